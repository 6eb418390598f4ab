package list

import "fmt"

// Cursor is a position between two elements of a list, or at one of its ends. It moves in both directions and
// hands out the element it steps over.
//
// A cursor is bound to the list state it was positioned on. Any structural change of the list (push, insert,
// remove, clear) makes the cursor stale: HasNext and HasPrevious report false and Next / Previous return
// ErrStaleCursor until MoveToStart or MoveToEnd repositions it on the current list.
type Cursor[T comparable] struct {
	list       *LinkedList[T]
	prev, next *node[T] // Nodes on either side of the gap; nil marks a list boundary.
	generation uint64   // The list generation this cursor was positioned on.
}

// Cursor returns a new cursor positioned before the first element.
func (l *LinkedList[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{list: l}
	c.MoveToStart()
	return c
}

func (c *Cursor[T]) stale() bool {
	return c.generation != c.list.generation
}

// HasNext returns true if there is an element after the cursor.
func (c *Cursor[T]) HasNext() bool {
	return !c.stale() && c.next != nil
}

// HasPrevious returns true if there is an element before the cursor.
func (c *Cursor[T]) HasPrevious() bool {
	return !c.stale() && c.prev != nil
}

// Next moves the cursor one element forward and returns the element it stepped over.
func (c *Cursor[T]) Next() (T, error) {
	if c.stale() {
		return *new(T), ErrStaleCursor
	}
	if c.next == nil {
		return *new(T), fmt.Errorf("%w: no element after the cursor", ErrIteratorExhausted)
	}
	c.prev, c.next = c.next, c.next.next
	return c.prev.value, nil
}

// Previous moves the cursor one element backward and returns the element it stepped over.
func (c *Cursor[T]) Previous() (T, error) {
	if c.stale() {
		return *new(T), ErrStaleCursor
	}
	if c.prev == nil {
		return *new(T), fmt.Errorf("%w: no element before the cursor", ErrIteratorExhausted)
	}
	c.next, c.prev = c.prev, c.prev.prev
	return c.next.value, nil
}

// MoveToStart positions the cursor before the first element.
func (c *Cursor[T]) MoveToStart() {
	c.prev, c.next = nil, c.list.head
	c.generation = c.list.generation
}

// MoveToEnd positions the cursor after the last element.
func (c *Cursor[T]) MoveToEnd() {
	c.prev, c.next = c.list.tail, nil
	c.generation = c.list.generation
}
