// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package graph provides a simple graph structure, directed or undirected,
// with vertices identified by value and adjacency held as an ordered
// sequence of neighbor references backed by [linkedlist.List].
//
// Like the list it is built on, a [Graph] is not safe for concurrent use,
// and not-found conditions are reported through false results rather than
// errors.
package graph

import (
	"github.com/DataDog/collections-internal-go/linkedlist"
)

type (
	// Graph is a set of vertices and edges. Vertex identity is by value
	// equality: adding a value twice yields the same vertex.
	Graph[T comparable] struct {
		vertices map[T]*Vertex[T]
		directed bool
		edges    int
	}

	// Vertex is a single vertex in a [Graph], holding its value and the
	// ordered list of its neighbors.
	Vertex[T comparable] struct {
		Value    T
		adjacent *linkedlist.List[*Vertex[T]]
	}
)

// New creates a new, empty [Graph]. In undirected mode, every edge is
// visible from both of its endpoints.
func New[T comparable](directed bool) *Graph[T] {
	return &Graph[T]{
		vertices: make(map[T]*Vertex[T]),
		directed: directed,
	}
}

// Directed reports whether the graph was created in directed mode.
func (g *Graph[T]) Directed() bool {
	return g.directed
}

// Order returns the number of vertices in the graph.
func (g *Graph[T]) Order() int {
	return len(g.vertices)
}

// Size returns the number of edges in the graph. An undirected edge counts
// once, regardless of which endpoint it is viewed from.
func (g *Graph[T]) Size() int {
	return g.edges
}

// AddVertex adds a vertex for the given value and returns it. If a vertex
// with that value already exists, the existing vertex is returned unchanged.
func (g *Graph[T]) AddVertex(value T) *Vertex[T] {
	if vertex, ok := g.vertices[value]; ok {
		return vertex
	}
	vertex := &Vertex[T]{
		Value:    value,
		adjacent: linkedlist.New[*Vertex[T]](),
	}
	g.vertices[value] = vertex
	return vertex
}

// Vertex returns the vertex for the given value, or nil if none exists.
func (g *Graph[T]) Vertex(value T) *Vertex[T] {
	return g.vertices[value]
}

// RemoveVertex removes the vertex for the given value along with every edge
// incident to it. Returns false if no such vertex exists.
func (g *Graph[T]) RemoveVertex(value T) bool {
	vertex, ok := g.vertices[value]
	if !ok {
		return false
	}
	delete(g.vertices, value)

	// Drop the vertex's own edges, repairing the neighbors' adjacency in
	// undirected mode.
	for node := vertex.adjacent.First(); node != nil; node = node.Next() {
		neighbor := node.Value
		if neighbor != vertex && !g.directed {
			removeNeighbor(neighbor, vertex)
		}
		g.edges--
	}
	vertex.adjacent = linkedlist.New[*Vertex[T]]()

	// In directed mode, other vertices may still hold inbound edges to the
	// removed vertex.
	if g.directed {
		for _, other := range g.vertices {
			if removeNeighbor(other, vertex) {
				g.edges--
			}
		}
	}
	return true
}

// AddEdge adds an edge between the two values, creating missing vertices on
// the fly. In undirected mode the adjacency is inserted on both endpoints,
// both or neither. Returns false if the edge already exists; self-loops are
// allowed.
func (g *Graph[T]) AddEdge(from, to T) bool {
	src := g.AddVertex(from)
	dst := g.AddVertex(to)

	if hasNeighbor(src, dst) {
		return false
	}

	src.adjacent.AddLast(dst)
	if !g.directed && src != dst {
		dst.adjacent.AddLast(src)
	}
	g.edges++
	return true
}

// RemoveEdge removes the edge between the two values. In undirected mode the
// adjacency is removed from both endpoints. Returns false if either vertex
// or the edge itself does not exist.
func (g *Graph[T]) RemoveEdge(from, to T) bool {
	src, dst := g.vertices[from], g.vertices[to]
	if src == nil || dst == nil {
		return false
	}

	if !removeNeighbor(src, dst) {
		return false
	}
	if !g.directed && src != dst {
		removeNeighbor(dst, src)
	}
	g.edges--
	return true
}

// HasEdge reports whether an edge exists between the two values. In directed
// mode, only the from→to direction is considered.
func (g *Graph[T]) HasEdge(from, to T) bool {
	src, dst := g.vertices[from], g.vertices[to]
	if src == nil || dst == nil {
		return false
	}
	return hasNeighbor(src, dst)
}

// Neighbors returns the values adjacent to the given value, in insertion
// order. Returns nil if no such vertex exists or it has no neighbors.
func (g *Graph[T]) Neighbors(value T) []T {
	vertex, ok := g.vertices[value]
	if !ok {
		return nil
	}
	var neighbors []T
	vertex.adjacent.Range(func(node *linkedlist.Node[*Vertex[T]], _ int) bool {
		neighbors = append(neighbors, node.Value.Value)
		return true
	})
	return neighbors
}

// Degree returns the number of neighbors of the given value, or 0 if no such
// vertex exists.
func (g *Graph[T]) Degree(value T) int {
	vertex, ok := g.vertices[value]
	if !ok {
		return 0
	}
	return vertex.adjacent.Len()
}

// hasNeighbor reports whether dst is in src's adjacency list.
func hasNeighbor[T comparable](src, dst *Vertex[T]) bool {
	_, _, ok := src.adjacent.Find(func(node *linkedlist.Node[*Vertex[T]], _ int) bool {
		return node.Value == dst
	})
	return ok
}

// removeNeighbor splices dst out of src's adjacency list, reporting whether
// it was present.
func removeNeighbor[T comparable](src, dst *Vertex[T]) bool {
	_, ok := src.adjacent.RemoveFunc(func(node *linkedlist.Node[*Vertex[T]], _ int) bool {
		return node.Value == dst
	})
	return ok
}
