// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linkedlist

// Cursor is a pull-based forward iterator over a [List]. It is lazy and
// finite, and can be abandoned at any point with no cleanup obligation.
// A Cursor reflects the live list as it walks it: it captures the head at
// creation time, not a snapshot of the whole sequence.
type Cursor[T any] struct {
	next  *Node[T]
	index int
}

// Iter returns a new [Cursor] positioned before the current first node.
// Each call starts a fresh traversal from the list's live head.
func (l *List[T]) Iter() *Cursor[T] {
	return &Cursor[T]{next: l.first}
}

// Next advances the cursor and returns the next node along with its position
// at the time of the visit. The third result is false once the traversal is
// exhausted; subsequent calls keep returning false.
func (c *Cursor[T]) Next() (*Node[T], int, bool) {
	node := c.next
	if node == nil {
		return nil, 0, false
	}
	index := c.index
	c.next = node.next
	c.index++
	return node, index, true
}
