// Package quicksort implements an in-place partition-exchange sort.
package quicksort

import (
	"github.com/emirpasic/gods/utils"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// Sort sorts the given slice in ascending order.
func Sort[T constraints.Ordered](s []T) {
	SortFunc(s, lo.Comparator[T])
}

// SortValues sorts the given values using a gods comparator.
func SortValues(values []interface{}, comparator utils.Comparator) {
	SortFunc(values, comparator)
}

// SortFunc sorts the given slice in the order defined by compare, which returns a negative number if a sorts before
// b, a positive number if a sorts after b and 0 otherwise. The sort is not stable.
func SortFunc[T any](s []T, compare func(a, b T) int) {
	for len(s) > 1 {
		pivotIndex := partition(s, compare)

		// recurse into the smaller half only, so the depth of the stack stays logarithmic
		if pivotIndex < len(s)-1-pivotIndex {
			SortFunc(s[:pivotIndex], compare)
			s = s[pivotIndex+1:]
		} else {
			SortFunc(s[pivotIndex+1:], compare)
			s = s[:pivotIndex]
		}
	}
}

// partition uses the last element as pivot and moves it to its final position. Elements before that position do not
// sort after the pivot, elements behind it do not sort before it. It returns the final position of the pivot.
func partition[T any](s []T, compare func(a, b T) int) int {
	last := len(s) - 1
	pivot := s[last]

	left, right := 0, last
	for {
		for left < last && compare(s[left], pivot) < 0 {
			left++
		}

		// right always moves at least once, otherwise runs of equal elements would be swapped forever
		right--
		for right > 0 && compare(s[right], pivot) > 0 {
			right--
		}

		if left >= right {
			break
		}

		s[left], s[right] = s[right], s[left]
	}

	s[left], s[last] = s[last], s[left]

	return left
}
