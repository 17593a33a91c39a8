package seqs

import "iter"

// Any checks if there is an item in the input sequence that satisfies the condition f.
// It returns true as soon as it finds such an item, without pulling anything past it.
// Otherwise, it returns false, including the case when the sequence was empty.
func Any[A any](in iter.Seq[A], f func(A) bool) bool {
	if in == nil {
		return false
	}

	for a := range in {
		if f(a) {
			return true
		}
	}

	return false
}

// All checks if all items in the input sequence satisfy the condition f.
// It returns false as soon as it finds an item that does not satisfy the condition,
// without pulling anything past it. Otherwise, it returns true, including the case
// when the sequence was empty.
func All[A any](in iter.Seq[A], f func(A) bool) bool {
	// Idea: x && y && z is the same as !(!x || !y || !z)
	// So we can use Any with a negated condition to implement All
	return !Any(in, func(a A) bool {
		return !f(a)
	})
}
