package seqs_test

import (
	"fmt"
	"strings"

	"github.com/vetkas/seqs"
)

// --- Package examples ---

// This example demonstrates a pipeline that takes an unbounded sequence of
// integers, squares them, keeps the even results and materializes the first four.
// No intermediate collection is built; elements flow through the chain one at a
// time, and the unbounded source stops being pulled as soon as Take is satisfied.
func Example() {
	squares := seqs.Map(seqs.RangeFrom(1), func(x int) int {
		return x * x
	})

	even := seqs.Filter(squares, func(x int) bool {
		return x%2 == 0
	})

	fmt.Println(seqs.ToSlice(seqs.Take(even, 4)))
	// Output:
	// [4 16 36 64]
}

// This example demonstrates splitting a sequence into two branches with Partition.
// Each branch re-traverses the source independently.
func Example_partitioning() {
	words := seqs.FromSlice([]string{"go", "gopher", "seq", "sequence", "iterator"})

	short, long := seqs.Partition(words, func(w string) bool {
		return len(w) <= 3
	})

	fmt.Println("short:", seqs.ToSlice(short))
	fmt.Println("long:", seqs.ToSlice(long))
	// Output:
	// short: [go seq]
	// long: [gopher sequence iterator]
}

// --- Function examples ---

func ExampleRange() {
	fmt.Println(seqs.ToSlice(seqs.Range(0, 3)))
	fmt.Println(seqs.ToSlice(seqs.Range(0, -4)))
	fmt.Println(seqs.ToSlice(seqs.Range(2, 2)))
	// Output:
	// [0 1 2]
	// [0 -1 -2 -3]
	// []
}

func ExampleScan() {
	// running totals
	totals := seqs.Scan(seqs.FromSlice([]int{1, 2, 3}), 10, func(acc, x int) int {
		return acc + x
	})

	fmt.Println(seqs.ToSlice(totals))
	// Output:
	// [11 13 16]
}

func ExamplePairwise() {
	readings := seqs.FromSlice([]int{100, 103, 101, 107})

	for prev, next := range seqs.Pairwise(readings) {
		fmt.Println(next - prev)
	}
	// Output:
	// 3
	// -2
	// 6
}

func ExampleEnumerate() {
	for i, w := range seqs.Enumerate(seqs.FromSlice([]string{"a", "b", "c"})) {
		fmt.Printf("%d: %s\n", i, w)
	}
	// Output:
	// 0: a
	// 1: b
	// 2: c
}

func ExampleFold() {
	sentence := seqs.Fold(seqs.FromSlice([]string{"lazy", "by", "default"}), "seqs:",
		func(acc, w string) string {
			return acc + " " + w
		})

	fmt.Println(sentence)
	// Output:
	// seqs: lazy by default
}

func ExampleInspect() {
	in := seqs.Inspect(seqs.Range(0, 3), func(x int) {
		fmt.Println("pulled", x)
	})

	// nothing has been printed yet; Inspect fires only during traversal
	sum := seqs.Fold(in, 0, func(acc, x int) int { return acc + x })
	fmt.Println("sum", sum)
	// Output:
	// pulled 0
	// pulled 1
	// pulled 2
	// sum 3
}

func ExampleBatch() {
	ids := seqs.Range(0, 7)

	for batch := range seqs.Batch(ids, 3) {
		fmt.Println(batch)
	}
	// Output:
	// [0 1 2]
	// [3 4 5]
	// [6]
}

func ExampleAny() {
	words := seqs.FromSlice([]string{"alpha", "beta", "gamma"})

	found := seqs.Any(words, func(w string) bool {
		return strings.HasPrefix(w, "b")
	})

	fmt.Println(found)
	// Output:
	// true
}
