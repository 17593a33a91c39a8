package seqs

import (
	"iter"

	"github.com/vetkas/seqs/internal/core"
)

// Pairwise yields overlapping consecutive pairs of the input: for items
// e0, e1, e2, ... it emits (e0, e1), (e1, e2), (e2, e3) and so on. An input of
// length k produces max(k-1, 0) pairs, so empty and single-item inputs produce
// nothing. Pair members are value snapshots taken at pull time.
//
// Use [Keys] or [Values] to route one side of the pairs back into a single-value
// pipeline.
func Pairwise[A any](in iter.Seq[A]) iter.Seq2[A, A] {
	if in == nil {
		return nil
	}

	return func(yield func(A, A) bool) {
		var prev A
		first := true
		for a := range in {
			if first {
				prev = a
				first = false
				continue
			}
			if !yield(prev, a) {
				return
			}
			prev = a
		}
	}
}

// Enumerate yields (index, item) pairs, with the index starting at 0 and
// incrementing once per pulled item. The index counts items that reach this stage,
// so upstream filtering produces consecutive indices, not gaps.
func Enumerate[A any](in iter.Seq[A]) iter.Seq2[int, A] {
	if in == nil {
		return nil
	}

	return func(yield func(int, A) bool) {
		i := 0
		for a := range in {
			if !yield(i, a) {
				return
			}
			i++
		}
	}
}

// Batch groups items from an input sequence into slices of up to size items.
// The last batch may be shorter; empty batches are never emitted. Each batch is a
// freshly allocated slice that is safe to retain. Non-positive size panics.
func Batch[A any](in iter.Seq[A], size int) iter.Seq[[]A] {
	return core.Batch(in, size)
}

// Unbatch is the inverse of [Batch]. It takes a sequence of slices and returns a
// sequence of individual items, preserving order.
func Unbatch[A any](in iter.Seq[[]A]) iter.Seq[A] {
	return core.Unbatch(in)
}
