// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linkedlist

// Find is the shared forward-traversal primitive of the list. It invokes fn
// for each node starting at the head, with the node's zero-based index, and
// stops at the first node for which fn returns true, returning that node and
// its index. If fn never returns true over the whole list, the third result
// is false.
func (l *List[T]) Find(fn func(node *Node[T], index int) bool) (*Node[T], int, bool) {
	index := 0
	for node := l.first; node != nil; node = node.next {
		if fn(node, index) {
			return node, index, true
		}
		index++
	}
	return nil, 0, false
}

// Get returns the node at the zero-based index, traversing forward from the
// head. Returns nil if index is outside [0, Len-1], including on an empty
// list. Runs in O(n).
func (l *List[T]) Get(index int) *Node[T] {
	if index < 0 || index >= l.size {
		return nil
	}
	node, _, _ := l.Find(func(_ *Node[T], i int) bool { return i == index })
	return node
}

// Range invokes fn for each node in forward order, with the node's zero-based
// index, until fn returns false or the list is exhausted.
func (l *List[T]) Range(fn func(node *Node[T], index int) bool) {
	index := 0
	for node := l.first; node != nil; node = node.next {
		if !fn(node, index) {
			return
		}
		index++
	}
}

// IndexOf returns the position of the first node whose value equals the
// given value under Go's == operator. The second result is false if no node
// matches.
func IndexOf[T comparable](l *List[T], value T) (int, bool) {
	_, index, ok := l.Find(func(node *Node[T], _ int) bool { return node.Value == value })
	return index, ok
}
