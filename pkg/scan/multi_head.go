// Sorting several inputs one by one leaves a set of sorted lists that still need to become one. This module
// implements a heap-based multi-way merge that lazily pulls from the underlying sorted sequences, so only one
// pending element per sequence is held in memory.
//
// The merge is stable: elements comparing equal are yielded in the order of the sequences that produced them,
// and within one sequence in their original order. Nothing is dropped.

package scan

import (
	"container/heap"
	"errors"
	"iter"

	"github.com/nobletooth/dlist/pkg/utils"
)

// heapElement represents a pulled item from sequences inside mergeHeap.
type heapElement[T any] struct {
	val    T
	seqIdx int // The sequence index inside mergeHeap that produced this element.
}

// mergeHeap holds the merge state over multiple sequences.
type mergeHeap[T any] struct { // Implements heap.Interface.
	compare  utils.CompareFn[T]
	elements []*heapElement[T] // The latest elements pulled from each non-exhausted sequence.
}

var _ heap.Interface = (*mergeHeap[int])(nil)

func (mh *mergeHeap[T]) Len() int {
	return len(mh.elements)
}

// Less returns true when element[i] is smaller, or equal but pulled from an earlier sequence.
func (mh *mergeHeap[T]) Less(i, j int) bool {
	e1, e2 := mh.elements[i], mh.elements[j]
	if cmp := mh.compare(e1.val, e2.val); cmp == 0 {
		return e1.seqIdx < e2.seqIdx
	} else {
		return cmp < 0
	}
}

// Swap changes positions of elements at i and j.
func (mh *mergeHeap[T]) Swap(i, j int) {
	mh.elements[i], mh.elements[j] = mh.elements[j], mh.elements[i]
}

// Push will add the given element `x` to the heap if it matches the desired type.
func (mh *mergeHeap[T]) Push(x any) {
	if element, ok := x.(*heapElement[T]); !ok {
		utils.RaiseInvariant("merge_sorted", "pushed_invalid_type", "An item with invalid type was pushed to heap.")
	} else if element == nil {
		utils.RaiseInvariant("merge_sorted", "pushed_nil_element", "A nil element was pushed to merge heap.")
	} else if len(mh.elements) == cap(mh.elements) {
		utils.RaiseInvariant("merge_sorted", "exceeded_capacity",
			"An element was pushed while the capacity was full.", "cap", cap(mh.elements))
	} else {
		mh.elements = append(mh.elements, element)
	}
}

// Pop returns and removes the last element in the heap.
func (mh *mergeHeap[T]) Pop() any {
	lastElement := mh.elements[len(mh.elements)-1]
	mh.elements = mh.elements[:len(mh.elements)-1]
	return lastElement
}

// MergeSorted merges ascending `sequences` (by `compare`) into a single ascending sequence.
// Sequences are only pulled once the returned sequence is iterated; it can be iterated more than once.
func MergeSorted[T any](compare utils.CompareFn[T], sequences []iter.Seq[T]) (iter.Seq[T], error) {
	if compare == nil {
		return nil, errors.New("expected a non-nil comparison function")
	}

	return func(yield func(T) bool) {
		mh := &mergeHeap[T]{compare: compare, elements: make([]*heapElement[T], 0, len(sequences))}
		pull := make([]func() (T, bool), len(sequences))
		stop := make([]func(), 0, len(sequences))
		// Stop all underlying sequences once iteration is done.
		defer func() {
			for _, stopFn := range stop {
				stopFn()
			}
		}()

		// Prime the heap with the first element of every sequence.
		for seqIdx, seq := range sequences {
			pullFn, stopFn := iter.Pull(seq)
			stop = append(stop, stopFn)
			firstElem, hasAny := pullFn()
			if !hasAny { // Sequence has no elements. Would be skipped entirely.
				continue
			}
			pull[seqIdx] = pullFn
			heap.Push(mh, &heapElement[T]{val: firstElem, seqIdx: seqIdx})
		}

		for mh.Len() > 0 {
			topElement := heap.Pop(mh).(*heapElement[T])
			if nextElement, hasNext := pull[topElement.seqIdx](); hasNext {
				// Next element in the sequence enters the heap.
				heap.Push(mh, &heapElement[T]{val: nextElement, seqIdx: topElement.seqIdx})
			}
			if !yield(topElement.val) {
				return
			}
		}
	}, nil
}
