package core

import "iter"

func Drain[A any](in iter.Seq[A]) {
	for range in {
	}
}
