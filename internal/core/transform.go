package core

import "iter"

func FilterMap[A, B any](in iter.Seq[A], f func(A) (B, bool)) iter.Seq[B] {
	if in == nil {
		return nil
	}

	return func(yield func(B) bool) {
		for a := range in {
			b, keep := f(a)
			if keep && !yield(b) {
				return
			}
		}
	}
}

func FlatMap[A, B any](in iter.Seq[A], f func(A) iter.Seq[B]) iter.Seq[B] {
	if in == nil {
		return nil
	}

	return func(yield func(B) bool) {
		for a := range in {
			for b := range f(a) {
				if !yield(b) {
					return
				}
			}
		}
	}
}
