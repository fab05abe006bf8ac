// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package linkedlist

import (
	"fmt"
	"strings"
)

// Join renders the list's values in forward order, separated by sep, using
// each value's default %v formatting. This is a debugging aid; the output is
// not guaranteed stable across versions and is not meant for round-tripping.
func (l *List[T]) Join(sep string) string {
	var sb strings.Builder
	for node := l.first; node != nil; node = node.next {
		if node != l.first {
			sb.WriteString(sep)
		}
		fmt.Fprintf(&sb, "%v", node.Value)
	}
	return sb.String()
}

// String implements [fmt.Stringer] with a " -> " separator.
func (l *List[T]) String() string {
	return l.Join(" -> ")
}
