package seqs

import "iter"

// ForEach applies a function f to each item in an input sequence, in order,
// discarding return values.
//
// This is a blocking function that traverses the input to the end. To exit a
// traversal early, use a plain for-range loop instead.
func ForEach[A any](in iter.Seq[A], f func(A)) {
	if in == nil {
		return
	}

	for a := range in {
		f(a)
	}
}

// ToSlice materializes an input sequence into a slice, preserving order.
//
// This is a blocking function that traverses the input to the end: applying it to
// an unbounded sequence never returns. An empty input yields a nil slice.
func ToSlice[A any](in iter.Seq[A]) []A {
	if in == nil {
		return nil
	}

	var res []A
	for a := range in {
		res = append(res, a)
	}

	return res
}

// First returns the first item of the input sequence. The found flag is set to
// false if the sequence was empty, otherwise it is set to true. At most one item
// is pulled from the input.
func First[A any](in iter.Seq[A]) (value A, found bool) {
	if in == nil {
		return value, false
	}

	for a := range in {
		return a, true
	}

	found = false
	return
}

// Count traverses the input sequence to the end and returns the number of items.
func Count[A any](in iter.Seq[A]) int {
	if in == nil {
		return 0
	}

	n := 0
	for range in {
		n++
	}

	return n
}
