// Package list implements a generic doubly linked list with a bidirectional cursor and a stable merge sort.
//
// The list keeps a head, a tail and an element count. Every node links to its neighbors in both directions so
// elements can be added or removed at either end in O(1), and traversal works forward from the head or backward
// from the tail. Positional and value lookups walk the chain from the head in O(n).
//
// Absent values (nil pointers, interfaces, maps, channels, funcs) can never be stored; lookups and removals of a
// missing value are no-ops rather than errors.
//
// WARNING: LinkedList is not safe for concurrent use. Callers must serialize access themselves.
package list

import (
	"fmt"
	"iter"
	"strings"
)

// LinkedList represents a doubly linked list of comparable values.
// The zero value is an empty list ready to use.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
	// generation is bumped on every structural change; cursors use it to detect that they went stale.
	generation uint64
}

// New creates a list holding the given `elems` in order.
func New[T comparable](elems ...T) (*LinkedList[T], error) {
	l := new(LinkedList[T])
	for i, v := range elems {
		if err := l.PushBack(v); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return l, nil
}

// FromSeq creates a list holding the values yielded by `seq` in order.
func FromSeq[T comparable](seq iter.Seq[T]) (*LinkedList[T], error) {
	l := new(LinkedList[T])
	for v := range seq {
		if err := l.PushBack(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Len returns the number of elements in the list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// PushBack adds a new value to the back of the list.
func (l *LinkedList[T]) PushBack(v T) error {
	if isAbsent(v) {
		return fmt.Errorf("%w: can't store a nil value", ErrInvalidArgument)
	}
	l.linkBack(v)
	return nil
}

// PushFront adds a new value to the front of the list.
func (l *LinkedList[T]) PushFront(v T) error {
	if isAbsent(v) {
		return fmt.Errorf("%w: can't store a nil value", ErrInvalidArgument)
	}
	l.linkFront(v)
	return nil
}

// InsertAt inserts `v` so that it ends up at index `i`. An index below 1 inserts at the front and an index past
// the last element inserts at the back.
func (l *LinkedList[T]) InsertAt(i int, v T) error {
	if isAbsent(v) {
		return fmt.Errorf("%w: can't store a nil value", ErrInvalidArgument)
	}
	switch {
	case i < 1:
		l.linkFront(v)
	case i > l.size-1:
		l.linkBack(v)
	default:
		at := l.nodeAt(i)
		if at == nil {
			return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.size)
		}
		l.linkBefore(at, v)
	}
	return nil
}

// RemoveValue removes the first element equal to `v`. Returns false if nothing was removed.
func (l *LinkedList[T]) RemoveValue(v T) bool {
	if isAbsent(v) || l.size == 0 {
		return false
	}
	n := l.nodeOf(v)
	if n == nil {
		return false
	}
	l.unlink(n)
	return true
}

// RemoveFront removes and returns the first element.
func (l *LinkedList[T]) RemoveFront() (T, error) {
	if l.size == 0 {
		return *new(T), ErrEmptyList
	}
	v := l.head.value
	l.unlink(l.head)
	return v, nil
}

// RemoveBack removes and returns the last element.
func (l *LinkedList[T]) RemoveBack() (T, error) {
	if l.size == 0 {
		return *new(T), ErrEmptyList
	}
	v := l.tail.value
	l.unlink(l.tail)
	return v, nil
}

// Front returns the first element without removing it.
func (l *LinkedList[T]) Front() (T, error) {
	if l.size == 0 {
		return *new(T), ErrEmptyList
	}
	return l.head.value, nil
}

// Back returns the last element without removing it.
func (l *LinkedList[T]) Back() (T, error) {
	if l.size == 0 {
		return *new(T), ErrEmptyList
	}
	return l.tail.value, nil
}

// Contains returns true if an element equal to `v` is in the list.
func (l *LinkedList[T]) Contains(v T) bool {
	return l.nodeOf(v) != nil
}

// IndexOf returns the zero-based index of the first element equal to `v`, or -1 if there is none.
func (l *LinkedList[T]) IndexOf(v T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return -1
}

// Get returns the element at index `i`.
func (l *LinkedList[T]) Get(i int) (T, error) {
	if l.size == 0 {
		return *new(T), ErrEmptyList
	}
	if i < 0 || i >= l.size {
		return *new(T), fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.size)
	}
	n := l.nodeAt(i)
	if n == nil {
		return *new(T), fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.size)
	}
	return n.value, nil
}

// Clear drops every element.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
	l.generation++
}

// Reversed returns a new list holding the elements in reverse order.
func (l *LinkedList[T]) Reversed() *LinkedList[T] {
	reversed := new(LinkedList[T])
	for n := l.head; n != nil; n = n.next {
		reversed.linkFront(n.value)
	}
	return reversed
}

// Copy returns a new list holding the same elements in the same order. Elements are copied shallowly.
func (l *LinkedList[T]) Copy() *LinkedList[T] {
	copied := new(LinkedList[T])
	for n := l.head; n != nil; n = n.next {
		copied.linkBack(n.value)
	}
	return copied
}

// Filter returns a new list holding the elements for which `keep` returns true, in order.
func (l *LinkedList[T]) Filter(keep func(T) bool) *LinkedList[T] {
	filtered := new(LinkedList[T])
	for n := l.head; n != nil; n = n.next {
		if keep(n.value) {
			filtered.linkBack(n.value)
		}
	}
	return filtered
}

// Equal returns true if `other` has the same length and pairwise equal elements.
func (l *LinkedList[T]) Equal(other *LinkedList[T]) bool {
	if other == nil || l.size != other.size {
		return false
	}
	for n1, n2 := l.head, other.head; n1 != nil && n2 != nil; n1, n2 = n1.next, n2.next {
		if n1.value != n2.value {
			return false
		}
	}
	return true
}

// String renders the list as "[e0, e1, ..., en-1]".
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// All returns a sequence over the elements from front to back.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a sequence over the elements from back to front.
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice returns the elements in order.
func (l *LinkedList[T]) ToSlice() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}
