//go:build go1.24

package seqs

import "iter"

// Seq is a type alias for [iter.Seq].
// This alias is optional, but it can make the code more readable.
//
// Before:
//
//	func StreamUsers() iter.Seq[*User] {
//		...
//	}
//
// After:
//
//	func StreamUsers() seqs.Seq[*User] {
//		...
//	}
type Seq[A any] = iter.Seq[A]

// Seq2 is a type alias for [iter.Seq2].
type Seq2[K, V any] = iter.Seq2[K, V]
