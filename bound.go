package seqs

import "iter"

// Take returns a sequence of at most the first n items of the input. Once n items
// have been emitted it stops pulling from the input entirely, without draining the
// remainder. This makes Take safe to apply to unbounded sequences such as
// [RangeFrom]. Non-positive n yields an empty sequence.
func Take[A any](in iter.Seq[A], n int) iter.Seq[A] {
	if in == nil {
		return nil
	}

	return func(yield func(A) bool) {
		if n <= 0 {
			return
		}

		taken := 0
		for a := range in {
			if !yield(a) {
				return
			}
			taken++
			if taken >= n {
				return
			}
		}
	}
}

// Drop returns a sequence that skips the first n items of the input and yields the
// rest. Non-positive n yields the input unchanged.
func Drop[A any](in iter.Seq[A], n int) iter.Seq[A] {
	if in == nil {
		return nil
	}

	return func(yield func(A) bool) {
		skipped := 0
		for a := range in {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// TakeWhile yields items while f holds, then stops pulling from the input at the
// first item for which f does not hold. That item is consumed but not emitted.
func TakeWhile[A any](in iter.Seq[A], f func(A) bool) iter.Seq[A] {
	if in == nil {
		return nil
	}

	return func(yield func(A) bool) {
		for a := range in {
			if !f(a) {
				return
			}
			if !yield(a) {
				return
			}
		}
	}
}

// DropWhile skips items while f holds, then yields the rest of the input unchanged,
// starting with the first item for which f does not hold. f is not called again
// after that point.
func DropWhile[A any](in iter.Seq[A], f func(A) bool) iter.Seq[A] {
	if in == nil {
		return nil
	}

	return func(yield func(A) bool) {
		dropping := true
		for a := range in {
			if dropping {
				if f(a) {
					continue
				}
				dropping = false
			}
			if !yield(a) {
				return
			}
		}
	}
}
