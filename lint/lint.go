package lint

import (
	"fmt"
	"strings"

	"github.com/npillmayer/algotype/construct"
	"github.com/npillmayer/algotype/inline"
	"github.com/npillmayer/algotype/tree"
)

// Severity of an issue.
type Severity int8

// Errors make the typesetter fail, warnings do not.
const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Issue is a finding of Check.
type Issue struct {
	Severity Severity
	Path     string // location of the construct, see construct.Node.Path
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Path, i.Severity, i.Message)
}

// inlineAttributes are the attributes holding inline text.
var inlineAttributes = []string{
	construct.AttrCondition,
	construct.AttrInit,
	construct.AttrTo,
	construct.AttrStep,
	construct.AttrContent,
}

type check func(n *construct.Node, issues *issues)

var checks = []check{
	checkKind,
	checkAttributes,
	checkMath,
	checkJump,
	checkElse,
	checkChildren,
}

type issues []Issue

func (is *issues) add(n *construct.Node, sev Severity, format string, args ...interface{}) {
	*is = append(*is, Issue{Severity: sev, Path: n.Path(), Message: fmt.Sprintf(format, args...)})
}

// Check walks a construct tree and reports all issues found, in document
// order. root is expected to be an algorithm.
func Check(root *construct.Node) []Issue {
	var found issues
	if root == nil {
		return nil
	}
	if root.Kind() != construct.Algorithm {
		found.add(root, Error, "root is %s, not an algorithm", root.Name())
	}
	ids := make(map[string]string)
	err := tree.Walk(root.TreeNode(), func(tn *tree.Node[*construct.Node], depth int) error {
		n := construct.FromTreeNode(tn)
		if depth > 0 {
			for _, c := range checks {
				c(n, &found)
			}
		}
		if id := strings.TrimSpace(n.Attr(construct.AttrID)); id != "" {
			if first, ok := ids[id]; ok {
				found.add(n, Warning, "duplicate id %q, first used at %s", id, first)
			} else {
				ids[id] = n.Path()
			}
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("lint: %v", err)
	}
	tracer().Debugf("lint found %d issues", len(found))
	return found
}

// Errors filters issues of severity Error.
func Errors(all []Issue) []Issue {
	var errs []Issue
	for _, i := range all {
		if i.Severity == Error {
			errs = append(errs, i)
		}
	}
	return errs
}

func checkKind(n *construct.Node, is *issues) {
	switch n.Kind() {
	case construct.Unknown:
		is.add(n, Error, "unknown construct <%s>", n.Tag())
	case construct.Algorithm:
		is.add(n, Error, "algorithms may not be nested")
	}
}

func checkAttributes(n *construct.Node, is *issues) {
	for _, key := range n.Kind().RequiredAttributes() {
		if strings.TrimSpace(n.Attr(key)) == "" {
			is.add(n, Warning, "%s is missing attribute %q", n.Kind(), key)
		}
	}
	if n.HasAttr(construct.AttrLabel) && !n.Kind().TakesLabel() && !jumps(n) {
		is.add(n, Warning, "label of %s will not be shown", n.Kind())
	}
}

func checkMath(n *construct.Node, is *issues) {
	if jumps(n) {
		return // labels are taken literally
	}
	for _, key := range inlineAttributes {
		if inline.Unterminated(n.Attr(key)) {
			is.add(n, Warning, "unterminated math region in %s", key)
		}
	}
}

func checkJump(n *construct.Node, is *issues) {
	if !jumps(n) {
		return
	}
	isLoop := func(test *tree.Node[*construct.Node]) bool {
		return construct.FromTreeNode(test).Kind().IsLoop()
	}
	if tree.AncestorWith(n.TreeNode(), isLoop) == nil {
		is.add(n, Error, "%s outside of a loop", n.Kind())
		return
	}
	label := Label(n.Attr(construct.AttrContent))
	if label == "" {
		label = Label(n.Attr(construct.AttrLabel))
	}
	if label == "" {
		return
	}
	labeled := func(test *tree.Node[*construct.Node]) bool {
		loop := construct.FromTreeNode(test)
		return loop.Kind().IsLoop() && Label(loop.Attr(construct.AttrLabel)) == label
	}
	if tree.AncestorWith(n.TreeNode(), labeled) == nil {
		is.add(n, Error, "label %q does not name an enclosing loop", label)
	}
}

func checkElse(n *construct.Node, is *issues) {
	if n.Kind() != construct.Else && n.Kind() != construct.ElseIf {
		return
	}
	prev := construct.FromTreeNode(n.TreeNode().PreviousSibling())
	if prev == nil || (prev.Kind() != construct.If && prev.Kind() != construct.ElseIf) {
		is.add(n, Warning, "%s does not follow if or else-if", n.Kind())
	}
}

func checkChildren(n *construct.Node, is *issues) {
	if n.Kind().IsTerminal() && n.ChildCount() > 0 {
		is.add(n, Warning, "child constructs of %s will not be shown", n.Kind())
	}
}

func jumps(n *construct.Node) bool {
	return n.Kind() == construct.Break || n.Kind() == construct.Continue
}

// Label normalizes a loop label: surrounding whitespace and a trailing
// colon are removed.
func Label(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ":"))
}
