package construct

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/algotype/tree"
)

// Attribute keys.
const (
	AttrName       = "name"       // display name of an algorithm
	AttrParameters = "parameters" // raw parameter list of an algorithm
	AttrCondition  = "condition"  // condition of conditionals, while- and for-each-loops
	AttrInit       = "init"       // initial assignment of counting loops
	AttrTo         = "to"         // bound of counting loops
	AttrStep       = "step"       // optional step expression of counting loops
	AttrLabel      = "label"      // loop label
	AttrComment    = "comment"    // annotation appended to a row
	AttrCommentID  = "comment-id" // id of the comment span
	AttrID         = "id"         // id of the row content
	AttrContent    = "content"    // statement text of terminal constructs
)

// Node is a construct node, the building block of an algorithm tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             Kind
	tag              string
	attrs            map[string]string
}

// Option is a type to help initializing construct nodes at creation time.
type Option func(*Node)

// Attr is an option to set an attribute value.
//
//     n := construct.New(construct.While, construct.Attr("condition", "$i < n$"))
//
func Attr(key, value string) Option {
	return func(n *Node) {
		if n.attrs == nil {
			n.attrs = make(map[string]string)
		}
		n.attrs[key] = value
	}
}

// Content is a shortcut for Attr(AttrContent, text).
func Content(text string) Option {
	return Attr(AttrContent, text)
}

// Tag is an option to remember the element name a node has been created from.
// If not set, the canonical element name of the node's kind is used.
func Tag(tag string) Option {
	return func(n *Node) {
		n.tag = strings.ToLower(tag)
	}
}

// New creates a construct node of a given kind. The kind is fixed for the
// lifetime of the node.
func New(kind Kind, opts ...Option) *Node {
	n := &Node{kind: kind}
	n.Payload = n // Payload will always reference the node itself
	for _, option := range opts {
		option(n)
	}
	if n.tag == "" {
		n.tag = kind.Tag()
	}
	if kind == Unknown {
		tracer().Debugf("construct node for unknown element <%s>", n.tag)
	}
	return n
}

// FromTreeNode gets the construct node from a generic tree node.
func FromTreeNode(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of a construct node.
func (n *Node) TreeNode() *tree.Node[*Node] {
	return &n.Node
}

// Add appends child constructs in document order and returns n to allow
// for chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.AddChild(&ch.Node)
		}
	}
	return n
}

// Kind returns the construct kind of a node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Tag returns the element name n has been created from.
func (n *Node) Tag() string {
	return n.tag
}

// Attr returns the value of an attribute. Missing attributes read as "".
func (n *Node) Attr(key string) string {
	if n == nil || n.attrs == nil {
		return ""
	}
	return n.attrs[key]
}

// HasAttr checks for the existence of an attribute.
func (n *Node) HasAttr(key string) bool {
	if n == nil || n.attrs == nil {
		return false
	}
	_, ok := n.attrs[key]
	return ok
}

// AttrKeys returns the keys of all attributes set, sorted.
func (n *Node) AttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Children returns the child constructs in document order.
func (n *Node) Children() []*Node {
	chs := n.Node.Children()
	if len(chs) == 0 {
		return nil
	}
	children := make([]*Node, len(chs))
	for i, ch := range chs {
		children[i] = ch.Payload
	}
	return children
}

// Parent returns the enclosing construct, or nil for the root.
func (n *Node) Parent() *Node {
	return FromTreeNode(n.Node.Parent())
}

// Name returns a short name for a node: its kind, or for nodes of unknown
// kind the element name.
func (n *Node) Name() string {
	if n.kind == Unknown && n.tag != "" {
		return n.tag
	}
	return n.kind.String()
}

// Path returns a location string for a node, e.g. "algorithm/while[1]/step[0]".
// Indices are positions within the parent's children.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var segments []string
	for c := n; c != nil; c = c.Parent() {
		if c.Parent() == nil {
			segments = append(segments, c.Name())
		} else {
			segments = append(segments, fmt.Sprintf("%s[%d]", c.Name(), c.Rank))
		}
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "/")
}

func (n *Node) String() string {
	return fmt.Sprintf("<%s #ch=%d>", n.Name(), n.ChildCount())
}
