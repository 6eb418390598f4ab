package list

import "github.com/nobletooth/dlist/pkg/utils"

// node represents a node in the doubly linked list. Nodes are owned by the list that created them and never
// escape the package.
type node[T comparable] struct {
	next  *node[T]
	prev  *node[T]
	value T
}

// nodeAt walks from the head and returns the node at index `i`. Callers must validate `i` against the size.
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	n := l.head
	for step := 0; step < i && n != nil; step++ {
		n = n.next
	}
	if n == nil {
		utils.RaiseInvariant("list", "broken_forward_chain",
			"Reached the end of the chain before the requested index.", "index", i, "size", l.size)
	}
	return n
}

// nodeOf returns the first node holding a value equal to `v`, or nil.
func (l *LinkedList[T]) nodeOf(v T) *node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return n
		}
	}
	return nil
}

// unlink removes the given node from the chain.
func (l *LinkedList[T]) unlink(n *node[T]) {
	switch {
	case l.head == l.tail: // The only element.
		l.head = nil
		l.tail = nil
	case n == l.head:
		n.next.prev = nil
		l.head = n.next
	case n == l.tail:
		n.prev.next = nil
		l.tail = n.prev
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}

	// Clean up the removed node's pointers.
	n.next = nil
	n.prev = nil

	l.size--
	l.generation++
}

// linkFront adds a new node holding `v` before the head.
func (l *LinkedList[T]) linkFront(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else { // List was empty.
		l.tail = n
	}
	l.head = n
	l.size++
	l.generation++
}

// linkBack adds a new node holding `v` after the tail.
func (l *LinkedList[T]) linkBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		// List was empty.
		l.head = n
	}
	l.tail = n
	l.size++
	l.generation++
}

// linkBefore adds a new node holding `v` right before `at`, which must not be the head.
func (l *LinkedList[T]) linkBefore(at *node[T], v T) {
	n := &node[T]{value: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++
	l.generation++
}
