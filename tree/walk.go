package tree

import "errors"

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an Action to prevent a walk from
// descending below the current node. It is not reported as an error.
var SkipChildren = errors.New("skip children of node")

// Action is a function type to operate on tree nodes during a walk.
// depth is the distance of n from the node the walk started at.
type Action[T comparable] func(n *Node[T], depth int) error

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for Select and AncestorWith.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// Walk traverses a tree starting at (and including) root, depth first.
// Parents are always visited before their children, children in
// document order.
//
// If the action returns SkipChildren, the walk will not descend below
// the current node. Any other error aborts the walk and is returned
// to the caller.
func Walk[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	return walk(root, 0, action)
}

func walk[T comparable](node *Node[T], depth int, action Action[T]) error {
	if err := action(node, depth); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, ch := range node.children {
		if err := walk(ch, depth+1, action); err != nil {
			return err
		}
	}
	return nil
}

// Select collects all nodes of a (sub-)tree matching a predicate, in
// document order. The start node is included in the search.
func Select[T comparable](root *Node[T], predicate Predicate[T]) []*Node[T] {
	var selection []*Node[T]
	err := Walk(root, func(n *Node[T], _ int) error {
		if predicate(n) {
			selection = append(selection, n)
		}
		return nil
	})
	if err != nil {
		tracer().Debugf("select: %v", err)
	}
	return selection
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node. If no ancestor matches,
// nil is returned.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			return anc
		}
	}
	return nil
}
