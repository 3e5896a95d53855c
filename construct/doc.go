/*
Package construct defines the input model of the typesetter: a tree of
pseudocode constructs.

Every algorithm is a tree rooted at a node of kind Algorithm. Inner nodes are
blocks (conditionals and loops), leafs are terminal statements. Nodes carry
string-valued attributes; a missing attribute reads as the empty string.

In a fully object oriented programming language we would subclass a generic
tree node type, but in Go we resort to composition: construct.Node includes a
tree.Node whose payload always references the construct node itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package construct

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algotype.construct'.
func tracer() tracing.Trace {
	return tracing.Select("algotype.construct")
}
