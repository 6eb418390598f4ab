// Sorting is a top-down merge sort: the list is cut after its first ceil(n/2) nodes, both halves are sorted
// recursively into new lists, and the sorted halves are merged with two pointers. The merge prefers the left
// half on ties, which keeps equal elements in their input order (stable). Recursion depth is O(log n).

package list

import (
	"cmp"
	"fmt"

	"github.com/nobletooth/dlist/pkg/utils"
)

// MergeSort returns a new list with the elements sorted by `compare`. The receiver is left untouched.
func (l *LinkedList[T]) MergeSort(compare utils.CompareFn[T]) (*LinkedList[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: expected a non-nil comparison function", ErrInvalidArgument)
	}
	return l.mergeSort(compare), nil
}

func (l *LinkedList[T]) mergeSort(compare utils.CompareFn[T]) *LinkedList[T] {
	if l.size <= 1 {
		return l.Copy()
	}

	// The left half takes the first (n-1)/2+1 nodes, i.e. the middle element of an odd-length list.
	middle := l.nodeAt((l.size-1)/2 + 1)
	left, right := new(LinkedList[T]), new(LinkedList[T])
	n := l.head
	for ; n != middle; n = n.next {
		left.linkBack(n.value)
	}
	for ; n != nil; n = n.next {
		right.linkBack(n.value)
	}

	return merge(compare, left.mergeSort(compare), right.mergeSort(compare))
}

// merge combines two sorted lists into a new sorted list; on ties the element from `left` goes first.
func merge[T comparable](compare utils.CompareFn[T], left, right *LinkedList[T]) *LinkedList[T] {
	merged := new(LinkedList[T])
	i, j := left.head, right.head
	for i != nil && j != nil {
		if compare(i.value, j.value) <= 0 {
			merged.linkBack(i.value)
			i = i.next
		} else {
			merged.linkBack(j.value)
			j = j.next
		}
	}
	for ; i != nil; i = i.next {
		merged.linkBack(i.value)
	}
	for ; j != nil; j = j.next {
		merged.linkBack(j.value)
	}
	return merged
}

// SortOrdered returns a new list with the elements of `l` in ascending natural order.
func SortOrdered[T cmp.Ordered](l *LinkedList[T]) *LinkedList[T] {
	return l.mergeSort(cmp.Compare[T])
}

// LinearSearchSorted looks for `v` in a list that is already sorted by `compare`. The scan stops at the first
// element greater than `v` since `v` can't appear after it.
func (l *LinkedList[T]) LinearSearchSorted(v T, compare utils.CompareFn[T]) (bool, error) {
	if compare == nil {
		return false, fmt.Errorf("%w: expected a non-nil comparison function", ErrInvalidArgument)
	}
	for n := l.head; n != nil; n = n.next {
		switch c := compare(v, n.value); {
		case c < 0:
			return false, nil
		case c == 0:
			return true, nil
		}
	}
	return false, nil
}

// LinearSearchOrdered looks for `v` in a list sorted in ascending natural order.
func LinearSearchOrdered[T cmp.Ordered](l *LinkedList[T], v T) bool {
	found, _ := l.LinearSearchSorted(v, cmp.Compare[T]) // cmp.Compare is never nil.
	return found
}
