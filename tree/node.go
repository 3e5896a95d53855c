package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children in document order
	Payload  T          // nodes may carry a payload of arbitrary type
	Rank     uint32     // position of this node within its parent's children
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node to the list of children.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// A child node which is already attached to another parent is
// isolated from its old parent first.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	ch.Rank = uint32(len(node.children))
	ch.parent = node
	node.children = append(node.children, ch)
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Isolate removes a node from its parent. Ranks of the remaining
// siblings are updated.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	i := p.IndexOfChild(node)
	if i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
		for j := i; j < len(p.children); j++ {
			p.children[j].Rank = uint32(j)
		}
	}
	node.parent = nil
	node.Rank = 0
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node, in document order.
// The slice is a copy; clients may not modify the tree through it.
func (node *Node[T]) Children() []*Node[T] {
	if node.ChildCount() == 0 {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent. ch may not be nil.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// PreviousSibling returns the sibling immediately before node, if any.
func (node *Node[T]) PreviousSibling() *Node[T] {
	if node == nil || node.parent == nil || node.Rank == 0 {
		return nil
	}
	sibling, _ := node.parent.Child(int(node.Rank) - 1)
	return sibling
}

// Depth returns the number of ancestors of a node. The root has depth 0.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}
