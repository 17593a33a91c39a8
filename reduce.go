package seqs

import "iter"

// Fold combines all items of an input sequence into a single value by applying f
// left to right, starting from initial. An empty sequence returns initial
// unchanged.
//
// This is a blocking function that traverses the input to the end.
func Fold[A, B any](in iter.Seq[A], initial B, f func(B, A) B) B {
	acc := initial
	if in == nil {
		return acc
	}

	for a := range in {
		acc = f(acc, a)
	}

	return acc
}

// Reduce is [Fold] with the argument order swapped: the combining function comes
// before the initial accumulator. The two are otherwise identical for every f,
// associative or not.
func Reduce[A, B any](in iter.Seq[A], f func(B, A) B, initial B) B {
	return Fold(in, initial, f)
}
