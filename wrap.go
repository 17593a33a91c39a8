package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// FromSlice converts a slice into a sequence that yields its elements in index order.
// The result can be traversed any number of times. The slice must not be mutated
// while a traversal is in flight; doing so is a caller error with undefined results.
func FromSlice[A any](s []A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, a := range s {
			if !yield(a) {
				return
			}
		}
	}
}

// FromSeq wraps an existing iterator into a sequence. Each traversal of the result
// delegates to src from the beginning, so the result is re-traversable exactly when
// src is. Wrapping a single-use iterator and traversing the result more than once
// is a caller error.
//
// Such a function allows values produced elsewhere (maps.Keys, slices.Values,
// hand-written iterators) to enter a pipeline:
//
//	s := seqs.FromSeq(maps.Keys(m))
func FromSeq[A any](src iter.Seq[A]) iter.Seq[A] {
	if src == nil {
		return nil
	}

	return func(yield func(A) bool) {
		for a := range src {
			if !yield(a) {
				return
			}
		}
	}
}

// FromChan converts a channel into a sequence that receives until the channel is
// closed. A channel is inherently single-use: the first traversal consumes it, and
// any later traversal observes an empty or partially-drained channel. Re-traversing
// the result, or passing it to [Partition], is therefore a caller error.
// Abandoning a traversal early leaves the remaining items in the channel.
func FromChan[A any](ch <-chan A) iter.Seq[A] {
	if ch == nil {
		return nil
	}

	return func(yield func(A) bool) {
		for a := range ch {
			if !yield(a) {
				return
			}
		}
	}
}

// ToChan converts a sequence into a channel fed by a background goroutine.
// The channel is closed when the sequence is exhausted. The consumer must drain
// the channel to avoid leaking the goroutine.
func ToChan[A any](in iter.Seq[A]) <-chan A {
	if in == nil {
		return nil
	}

	out := make(chan A)

	go func() {
		defer close(out)
		for a := range in {
			out <- a
		}
	}()

	return out
}

// Generate wraps a caller-supplied producer function into a sequence, with no added
// guarantees: re-traversability is entirely the producer's responsibility.
func Generate[A any](f func(yield func(A) bool)) iter.Seq[A] {
	return f
}

// Range returns a sequence of integers from start toward end, exclusive of end.
// Direction is inferred: ascending by +1 when start < end, descending by -1
// otherwise. Range(x, x) is an empty sequence.
func Range[N constraints.Integer](start, end N) iter.Seq[N] {
	return func(yield func(N) bool) {
		if start < end {
			for i := start; i < end; i++ {
				if !yield(i) {
					return
				}
			}
			return
		}

		for i := start; i > end; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

// RangeFrom returns an unbounded ascending sequence of integers starting at start.
// It must be bounded with [Take], [TakeWhile] or an early-exiting consumer before
// any exhaustive function such as [ToSlice] is applied, otherwise that function
// never returns.
func RangeFrom[N constraints.Integer](start N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat returns a sequence that yields the same item n times.
// Non-positive n yields an empty sequence.
func Repeat[A any](item A, n int) iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := 0; i < n; i++ {
			if !yield(item) {
				return
			}
		}
	}
}
