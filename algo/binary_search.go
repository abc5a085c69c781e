package algo

import (
	"slices"

	"github.com/goose-lang/primitive"
)

// LowerBound returns the first index i in [0, len(arr)] such that arr[i] >= item,
// or len(arr) if every element is smaller than item.
//
// arr must be sorted in non-decreasing order; the result is unspecified
// otherwise.
func LowerBound(arr []int, item int) int {
	// open interval: neither left nor right is ever a confirmed answer until
	// the loop ends
	var left = -1
	var right = len(arr)
	for right-left > 1 {
		middle := (left + right) / 2
		if arr[middle] >= item {
			right = middle
		} else {
			left = middle
		}
	}
	primitive.Assert(right == left+1)
	return right
}

// Search looks for item in the sorted slice arr. It returns (index, found)
// where if found = false, item is not present in arr (and index is -1), and if
// found = true, arr[index] == item.
//
// If item appears multiple times in arr, the leftmost index is returned.
//
// arr is not checked for sortedness; see IsSorted.
func Search(arr []int, item int) (int, bool) {
	if len(arr) == 0 {
		return -1, false
	}
	i := LowerBound(arr, item)
	// also covers i == len(arr)
	if item < arr[0] || item > arr[len(arr)-1] {
		return -1, false
	}
	if arr[i] == item {
		return i, true
	}
	return -1, false
}

// IsSorted reports whether arr is sorted in non-decreasing order, which is the
// precondition of Search and LowerBound.
func IsSorted(arr []int) bool {
	return slices.IsSorted(arr)
}
