package seqs

import (
	"iter"

	"github.com/vetkas/seqs/internal/core"
)

// Drain traverses an input sequence to the end, discarding all items. Useful when
// a pipeline is consumed purely for the side effects of an [Inspect] stage.
func Drain[A any](in iter.Seq[A]) {
	if in == nil {
		return
	}
	core.Drain(in)
}

// Chain concatenates several sequences into one, yielding all items of the first,
// then all items of the second, and so on. Later sequences are not pulled until
// the earlier ones are exhausted, so an unbounded sequence anywhere but last
// starves the rest.
func Chain[A any](ins ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, in := range ins {
			if in == nil {
				continue
			}
			for a := range in {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// Keys converts a sequence of pairs into a sequence of their first elements.
// Useful for routing the output of [Enumerate] or [Pairwise] back into
// single-value transformations.
func Keys[K, V any](in iter.Seq2[K, V]) iter.Seq[K] {
	if in == nil {
		return nil
	}

	return func(yield func(K) bool) {
		for k := range in {
			if !yield(k) {
				return
			}
		}
	}
}

// Values converts a sequence of pairs into a sequence of their second elements.
func Values[K, V any](in iter.Seq2[K, V]) iter.Seq[V] {
	if in == nil {
		return nil
	}

	return func(yield func(V) bool) {
		for _, v := range in {
			if !yield(v) {
				return
			}
		}
	}
}
