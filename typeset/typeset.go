package typeset

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/algotype/construct"
)

// Typeset renders an algorithm, returning the markup for its header line
// followed by one row per line of pseudocode.
//
// If an error occurs, no markup is returned.
func (ts *Typesetter) Typeset(algorithm *construct.Node) (string, error) {
	rows, err := ts.Rows(algorithm)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(ts.header(algorithm))
	for _, row := range rows {
		if err := ts.writeRow(&b, row); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Render writes the markup for an algorithm to w. Nothing is written if
// typesetting fails.
func (ts *Typesetter) Render(w io.Writer, algorithm *construct.Node) error {
	markup, err := ts.Typeset(algorithm)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, markup)
	return err
}

// Rows typesets the body of an algorithm and returns the rows, without
// converting them to markup.
func (ts *Typesetter) Rows(algorithm *construct.Node) ([]Row, error) {
	if algorithm == nil || algorithm.Kind() != construct.Algorithm {
		return nil, ErrNoAlgorithm
	}
	st := newState()
	if err := ts.renderChildren(algorithm, st); err != nil {
		tracer().Errorf("typesetting algorithm %q failed: %v", algorithm.Attr(construct.AttrName), err)
		return nil, err
	}
	return st.rows, nil
}

// renderChildren renders the children of n in document order.
func (ts *Typesetter) renderChildren(n *construct.Node, st *state) error {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	st.depth++
	defer func() { st.depth-- }()
	if st.depth > ts.maxDepth {
		return &DepthExceededError{Depth: st.depth, Limit: ts.maxDepth, Path: children[0].Path()}
	}
	for _, ch := range children {
		if err := ts.render(ch, st); err != nil {
			return err
		}
	}
	return nil
}

// render dispatches a construct to its renderer.
func (ts *Typesetter) render(n *construct.Node, st *state) error {
	tracer().Debugf("typesetting %s", n.Path())
	switch n.Kind() {
	case construct.If:
		return ts.conditional(n, st, "if")
	case construct.ElseIf:
		return ts.conditional(n, st, "else if")
	case construct.Else:
		return ts.unconditional(n, st, ts.keyword("else"))
	case construct.ForEach:
		return ts.forEach(n, st)
	case construct.For:
		return ts.counting(n, st, "to")
	case construct.ForDownto:
		return ts.counting(n, st, "downto")
	case construct.Forever:
		return ts.unconditional(n, st, ts.keyword("forever")+":")
	case construct.While:
		return ts.while(n, st)
	case construct.RepeatUntil:
		return ts.repeatUntil(n, st)
	case construct.Step:
		return ts.step(n, st, "")
	case construct.Return:
		return ts.step(n, st, "return")
	case construct.Print:
		return ts.step(n, st, "print")
	case construct.Output:
		return ts.step(n, st, "output")
	case construct.Yield:
		return ts.step(n, st, "yield")
	case construct.Break:
		return ts.jump(n, st, "break")
	case construct.Continue:
		return ts.jump(n, st, "continue")
	case construct.Algorithm, construct.Unknown:
		return &UnknownConstructError{Kind: n.Kind(), Tag: or(n.Tag(), n.Name()), Path: n.Path()}
	}
	return &UnknownConstructError{Kind: n.Kind(), Tag: fmt.Sprintf("kind-%d", n.Kind()), Path: n.Path()}
}
