package seqs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	isEven := func(x int) bool { return x%2 == 0 }

	t.Run("correctness", func(t *testing.T) {
		matched, rest := Partition(Range(0, 8), isEven)
		require.Equal(t, []int{0, 2, 4, 6}, ToSlice(matched))
		require.Equal(t, []int{1, 3, 5, 7}, ToSlice(rest))
	})

	t.Run("complement", func(t *testing.T) {
		for _, pred := range []func(int) bool{
			isEven,
			func(x int) bool { return x < 5 },
			func(x int) bool { return true },
			func(x int) bool { return false },
		} {
			src := Range(0, 20)
			matched, rest := Partition(src, pred)

			for _, x := range ToSlice(matched) {
				require.True(t, pred(x))
			}
			for _, x := range ToSlice(rest) {
				require.False(t, pred(x))
			}
			require.Equal(t, Count(src), Count(matched)+Count(rest))
		}
	})

	t.Run("empty", func(t *testing.T) {
		matched, rest := Partition(FromSlice([]int{}), isEven)
		require.Empty(t, ToSlice(matched))
		require.Empty(t, ToSlice(rest))
	})

	t.Run("branches are independent", func(t *testing.T) {
		matched, rest := Partition(Range(0, 8), isEven)

		// consuming one branch must not affect the other
		require.Equal(t, []int{0, 2, 4, 6}, ToSlice(matched))
		require.Equal(t, []int{0, 2, 4, 6}, ToSlice(matched))
		require.Equal(t, []int{1, 3, 5, 7}, ToSlice(rest))
	})

	t.Run("upstream side effects run once per branch", func(t *testing.T) {
		calls := 0
		in := Inspect(Range(0, 10), func(int) { calls++ })

		matched, rest := Partition(in, isEven)
		require.Equal(t, 0, calls)

		Drain(matched)
		require.Equal(t, 10, calls)

		Drain(rest)
		require.Equal(t, 20, calls)
	})
}
