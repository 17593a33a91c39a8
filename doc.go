// Package seqs provides composable, lazily-evaluated sequence transformations for Go,
// built on the standard iterator protocol. It lets pipelines of mapping, filtering,
// bounding, windowing and accumulating stages be chained without materializing
// intermediate collections, paying the cost of each element only when a terminal
// operation actually pulls it.
//
// # Sequences and Producers
//
// In this package, a sequence is an [iter.Seq] value. Every iter.Seq returned by this
// package acts as a producer: each range-over starts a fresh, independent traversal
// from the beginning. Traversing the same sequence twice yields two complete,
// identical traversals (provided the underlying source supports it), never a
// continuation of an exhausted one.
//
// Sequences compose by wrapping: every transforming function returns a new sequence
// whose closure holds the parent sequence plus one step of logic. Nothing is shared
// between the two, nothing is consumed at construction time, and the parent is never
// mutated. Traversal state lives entirely inside an in-flight range session, so
// concurrent or repeated traversals of the same pipeline do not interfere.
//
// # Lazy functions
//
// Functions such as [Map], [Filter], and [Take] take a sequence as an input and
// return a new sequence as an output. They return immediately and do no work until
// the output is traversed. Elements flow through the chain depth-first, one at a
// time: each element pulled from the source passes through every stage before the
// next element is pulled. This is what makes early termination cheap and infinite
// sources (see [RangeFrom]) safe to transform.
//
// Such functions are designed to be composed together to build processing pipelines:
//
//	stage2 := seqs.Map(input, ...)
//	stage3 := seqs.Filter(stage2, ...)
//	stage4 := seqs.Take(stage3, 100)
//	// consume stage4 with some blocking function
//
// # Blocking functions
//
// Functions such as [ToSlice], [ForEach], [Fold], [Any] and [All] are used at the
// last stage of the pipeline to traverse the sequence and return a final result.
// They block the calling goroutine until the sequence is exhausted or an early-exit
// condition is met ([Take] satisfied, [Any] found a match, a for-range body broke
// out). Calling [ToSlice] or another exhaustive function on an unbounded sequence
// never returns; bound such sequences with [Take] first.
//
// It's also possible to consume any sequence manually with a for-range loop, since
// every sequence conforms to the standard iterator protocol:
//
//	for x := range results {
//		// process x
//	}
//
// # Re-traversal
//
// Re-traversal is only as good as the source. Sequences built from slices, ranges or
// repeated values can be traversed any number of times. Sequences built from
// single-use sources, such as channels ([FromChan]) or stateful iterators passed to
// [FromSeq], yield correct results for the first traversal only; traversing them
// again, or passing them to [Partition] (which traverses its input twice), is a
// caller error with undefined results. This is a documented contract, not a runtime
// check.
//
// # Error handling
//
// This package performs no validation and defines no error types. Sequences carry
// plain values; a panic raised by a user-provided callback propagates out of the
// pull that triggered it and aborts the in-flight traversal. Pipelines that need to
// carry errors alongside values can use [iter.Seq2] with an error as the second
// element; [Keys] and [Values] help route such pairs.
package seqs
