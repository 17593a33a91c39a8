package seqs

import (
	"iter"

	"github.com/vetkas/seqs/internal/core"
)

// Map applies a transformation function to each item in an input sequence.
//
// This is a lazy function: f is not called until the output sequence is traversed,
// and is called exactly once per pulled item.
// See the package documentation for more information on lazy functions.
func Map[A, B any](in iter.Seq[A], f func(A) B) iter.Seq[B] {
	return core.FilterMap(in, func(a A) (B, bool) {
		return f(a), true
	})
}

// Filter removes items that do not meet a specified condition, preserving the order
// of the remaining items.
//
// This is a lazy function: f is not called until the output sequence is traversed.
// See the package documentation for more information on lazy functions.
func Filter[A any](in iter.Seq[A], f func(A) bool) iter.Seq[A] {
	return core.FilterMap(in, func(a A) (A, bool) {
		return a, f(a)
	})
}

// Reject is the inverse of [Filter]: it removes items that meet the condition,
// preserving the order of the remaining items.
//
// This is a lazy function: f is not called until the output sequence is traversed.
// See the package documentation for more information on lazy functions.
func Reject[A any](in iter.Seq[A], f func(A) bool) iter.Seq[A] {
	return core.FilterMap(in, func(a A) (A, bool) {
		return a, !f(a)
	})
}

// FlatMap applies a function to each item in an input sequence, where the function
// returns a sequence of items. These items are then flattened into a single output
// sequence, preserving order.
//
// This is a lazy function: f is not called until the output sequence is traversed.
// See the package documentation for more information on lazy functions.
func FlatMap[A, B any](in iter.Seq[A], f func(A) iter.Seq[B]) iter.Seq[B] {
	return core.FlatMap(in, f)
}

// Scan maintains a running accumulator over an input sequence. The accumulator
// starts at initial; for each pulled item the accumulator is updated with f and the
// updated value is emitted. The output therefore has exactly one item per input
// item, and the bare initial value is never emitted.
//
// This is a lazy function: f is not called until the output sequence is traversed.
// Each traversal starts from initial again.
func Scan[A, B any](in iter.Seq[A], initial B, f func(B, A) B) iter.Seq[B] {
	if in == nil {
		return nil
	}

	return func(yield func(B) bool) {
		acc := initial
		for a := range in {
			acc = f(acc, a)
			if !yield(acc) {
				return
			}
		}
	}
}

// Inspect calls f on each item for its side effects and passes the item through
// unchanged. f fires exactly once per item, at the moment the item is pulled by a
// downstream consumer - never at construction time, and never for items a bounding
// stage such as [Take] prevented from being pulled. Useful for debugging and
// instrumenting pipelines.
func Inspect[A any](in iter.Seq[A], f func(A)) iter.Seq[A] {
	return core.FilterMap(in, func(a A) (A, bool) {
		f(a)
		return a, true
	})
}
