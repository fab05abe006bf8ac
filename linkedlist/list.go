// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package linkedlist provides a generic doubly linked list with cached head
// and tail anchors, so that insertion and removal at either end is O(1), and
// with positional and predicate-based operations elsewhere in the sequence.
//
// The list is not safe for concurrent use; callers sharing a [List] across
// goroutines must serialize access themselves.
//
// Not-found and out-of-range conditions are never signaled by a panic or an
// error value: operations returning a node yield nil, and operations
// returning a value yield a false second result.
package linkedlist

type (
	// List is a doubly linked list. It keeps direct references to its first
	// and last nodes and a running count of its size. The zero value is an
	// empty list ready to use.
	List[T any] struct {
		first *Node[T]
		last  *Node[T]
		size  int
	}

	// Node is a single cell in a [List], holding a value and links to its
	// chain neighbors. A Node belongs to at most one list at a time.
	Node[T any] struct {
		Value T
		prev  *Node[T]
		next  *Node[T]
	}
)

// New creates a new, empty [List].
func New[T any]() *List[T] {
	return &List[T]{}
}

// Next returns the node after n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node before n, or nil if n is the first node.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Len returns the number of nodes currently in the list.
func (l *List[T]) Len() int {
	return l.size
}

// First returns the first node of the list, or nil if the list is empty.
func (l *List[T]) First() *Node[T] {
	return l.first
}

// Last returns the last node of the list, or nil if the list is empty.
func (l *List[T]) Last() *Node[T] {
	return l.last
}

// AddFirst creates a node holding value, links it before the current head,
// and returns it. Runs in O(1) and always succeeds.
func (l *List[T]) AddFirst(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.linkFirst(node)
	return node
}

// AddLast creates a node holding value, links it after the current tail, and
// returns it. Runs in O(1) and always succeeds.
func (l *List[T]) AddLast(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.linkLast(node)
	return node
}

// InsertAt splices a new node holding value immediately before the node
// currently at position, and returns it. Position 0 is equivalent to
// [List.AddFirst] and position [List.Len] to [List.AddLast]. If position is
// outside [0, Len], no node is inserted and nil is returned.
func (l *List[T]) InsertAt(position int, value T) *Node[T] {
	switch position {
	case 0:
		return l.AddFirst(value)
	case l.size:
		return l.AddLast(value)
	}

	at := l.Get(position)
	if at == nil {
		return nil
	}

	// at is neither first nor last here, so both neighbors exist.
	node := &Node[T]{Value: value, prev: at.prev, next: at}
	at.prev.next = node
	at.prev = node
	l.size++
	return node
}

// RemoveFirst detaches the head node and returns its value. Returns false if
// the list is empty, leaving the size at 0. Runs in O(1).
func (l *List[T]) RemoveFirst() (T, bool) {
	if l.first == nil {
		var zero T
		return zero, false
	}
	return l.RemoveNode(l.first), true
}

// RemoveLast detaches the tail node and returns its value. Returns false if
// the list is empty, leaving the size at 0. Runs in O(1).
func (l *List[T]) RemoveLast() (T, bool) {
	if l.last == nil {
		var zero T
		return zero, false
	}
	return l.RemoveNode(l.last), true
}

// RemoveAt splices out the node at position and returns its value. Position 0
// is equivalent to [List.RemoveFirst] and position Len-1 to [List.RemoveLast].
// Returns false if position does not resolve to an existing node, including
// on an empty list; the size is unchanged in that case.
func (l *List[T]) RemoveAt(position int) (T, bool) {
	switch position {
	case 0:
		return l.RemoveFirst()
	case l.size - 1:
		return l.RemoveLast()
	}

	node := l.Get(position)
	if node == nil {
		var zero T
		return zero, false
	}
	return l.RemoveNode(node), true
}

// RemoveFunc scans forward for the first node satisfying fn and splices it
// out, returning its value. Returns false, with the list unchanged, if no
// node satisfies fn.
func (l *List[T]) RemoveFunc(fn func(node *Node[T], index int) bool) (T, bool) {
	node, _, ok := l.Find(fn)
	if !ok {
		var zero T
		return zero, false
	}
	return l.RemoveNode(node), true
}

// RemoveNode splices the specified node out of the list by repairing its
// neighbors' links, and returns its value. The node must currently be in l.
// Runs in O(1).
func (l *List[T]) RemoveNode(node *Node[T]) T {
	next := node.next
	prev := node.prev

	if next == nil {
		l.last = prev
	} else {
		next.prev = prev
	}

	if prev == nil {
		l.first = next
	} else {
		prev.next = next
	}

	node.next = nil
	node.prev = nil
	l.size--
	return node.Value
}

// MoveToFront moves the specified node to the front of the list. The node
// must currently be in l.
func (l *List[T]) MoveToFront(node *Node[T]) {
	if node == l.first {
		return
	}
	l.RemoveNode(node)
	l.linkFirst(node)
}

// Push appends value at the tail. It is an alias for [List.AddLast].
func (l *List[T]) Push(value T) *Node[T] {
	return l.AddLast(value)
}

// Pop detaches the tail and returns its value. It is an alias for
// [List.RemoveLast].
func (l *List[T]) Pop() (T, bool) {
	return l.RemoveLast()
}

// Unshift prepends value at the head. It is an alias for [List.AddFirst].
func (l *List[T]) Unshift(value T) *Node[T] {
	return l.AddFirst(value)
}

// Shift detaches the head and returns its value. It is an alias for
// [List.RemoveFirst].
func (l *List[T]) Shift() (T, bool) {
	return l.RemoveFirst()
}

// linkFirst places the specified node at the front of the list.
func (l *List[T]) linkFirst(node *Node[T]) {
	first := l.first
	l.first = node
	if first == nil {
		l.last = node
	} else {
		node.next = first
		first.prev = node
	}
	l.size++
}

// linkLast places the specified node at the back of the list.
func (l *List[T]) linkLast(node *Node[T]) {
	last := l.last
	l.last = node
	if last == nil {
		l.first = node
	} else {
		node.prev = last
		last.next = node
	}
	l.size++
}
