package core

import (
	"fmt"
	"iter"
)

// Batch groups items from an input sequence into slices of up to n items.
// The last batch may be shorter. This function never emits empty batches.
// Each emitted batch is freshly allocated and safe to retain. Non-positive n panics.
func Batch[A any](in iter.Seq[A], n int) iter.Seq[[]A] {
	if in == nil {
		return nil
	}

	if n <= 0 {
		panic(fmt.Errorf("batch size must be positive, got %d", n))
	}

	return func(yield func([]A) bool) {
		batch := make([]A, 0, n)
		for a := range in {
			batch = append(batch, a)
			if len(batch) >= n {
				if !yield(batch) {
					return
				}
				batch = make([]A, 0, n)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Unbatch is the inverse of Batch. It takes a sequence of batches and emits individual items.
func Unbatch[A any](in iter.Seq[[]A]) iter.Seq[A] {
	if in == nil {
		return nil
	}

	return func(yield func(A) bool) {
		for batch := range in {
			for _, a := range batch {
				if !yield(a) {
					return
				}
			}
		}
	}
}
