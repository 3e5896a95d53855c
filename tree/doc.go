/*
Package tree implements the small all-purpose tree type construct trees are
built upon.

Nodes carry a payload of a comparable type parameter T and keep an ordered
slice of children. Child order is significant: it is the document order of
the elements a tree has been built from, and every traversal in this package
visits children in exactly that order.

Traversal

All traversals are sequential and depth-first. Typesetting an algorithm is a
single-pass operation with shared numbering state, so there is nothing to be
gained from walking sub-trees concurrently.

   Walk(root, action)           // pre-order traversal, reporting the depth
   Select(root, predicate)      // collect nodes matching a predicate
   AncestorWith(node, pred)     // find the nearest matching ancestor

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algotype.tree'.
func tracer() tracing.Trace {
	return tracing.Select("algotype.tree")
}
