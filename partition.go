package seqs

import "iter"

// Partition splits an input sequence into two independent sequences: matched yields
// the items for which f holds, rest yields the items for which it does not. Each
// output preserves the input order of its own items, and together they cover every
// input item exactly once.
//
// The two outputs are composed independently: each traversal of either one
// re-traverses the input from scratch. The input must therefore tolerate being
// traversed more than once, and upstream side effects (such as an [Inspect] stage)
// run once per traversed branch. Partitioning a single-use source like [FromChan]
// is a caller error with undefined results.
func Partition[A any](in iter.Seq[A], f func(A) bool) (matched, rest iter.Seq[A]) {
	return Filter(in, f), Reject(in, f)
}
