package typeset

import (
	"strings"

	"github.com/npillmayer/algotype/construct"
	"github.com/npillmayer/algotype/inline"
	"golang.org/x/net/html"
)

// --- Blocks ----------------------------------------------------------------

// block emits the label row (for loops) and the header row of a block
// construct, then renders its children one indentation level deeper.
// The indentation level is restored to its saved value afterwards.
func (ts *Typesetter) block(n *construct.Node, st *state, header string) error {
	ts.label(n, st)
	st.emit(ts.comment(n, ts.withID(n, header)))
	return ts.nested(n, st)
}

func (ts *Typesetter) nested(n *construct.Node, st *state) error {
	saved := st.indentation
	st.indentation++
	err := ts.renderChildren(n, st)
	st.indentation = saved
	return err
}

// conditional renders if and else-if branches.
func (ts *Typesetter) conditional(n *construct.Node, st *state, kw string) error {
	cond, err := ts.required(n, construct.AttrCondition)
	if err != nil {
		return err
	}
	return ts.block(n, st, phrase(ts.keyword(kw), cond, ts.keyword("then")))
}

// unconditional renders blocks without any inline text in their header.
func (ts *Typesetter) unconditional(n *construct.Node, st *state, header string) error {
	return ts.block(n, st, header)
}

func (ts *Typesetter) forEach(n *construct.Node, st *state) error {
	cond, err := ts.required(n, construct.AttrCondition)
	if err != nil {
		return err
	}
	return ts.block(n, st, phrase(ts.keyword("for each"), cond)+":")
}

func (ts *Typesetter) while(n *construct.Node, st *state) error {
	cond, err := ts.required(n, construct.AttrCondition)
	if err != nil {
		return err
	}
	return ts.block(n, st, phrase(ts.keyword("while"), cond)+":")
}

// counting renders for-loops; direction is either "to" or "downto".
func (ts *Typesetter) counting(n *construct.Node, st *state, direction string) error {
	init, err := ts.required(n, construct.AttrInit)
	if err != nil {
		return err
	}
	to, err := ts.required(n, construct.AttrTo)
	if err != nil {
		return err
	}
	header := phrase(ts.keyword("for"), init, ts.keyword(direction), to)
	if step := ts.expression(n.Attr(construct.AttrStep)); step != "" {
		header = phrase(header, ts.keyword("step"), step)
	}
	return ts.block(n, st, header+":")
}

// repeatUntil is the only construct emitting two numbered rows of its own:
// "repeat" before and "until ⟨condition⟩" after its children. The id goes
// to the first row, the comment to the second one.
func (ts *Typesetter) repeatUntil(n *construct.Node, st *state) error {
	cond, err := ts.required(n, construct.AttrCondition)
	if err != nil {
		return err
	}
	ts.label(n, st)
	st.emit(ts.withID(n, ts.keyword("repeat")))
	if err := ts.nested(n, st); err != nil {
		return err
	}
	st.emit(ts.comment(n, phrase(ts.keyword("until"), cond)))
	return nil
}

// --- Terminals -------------------------------------------------------------

// step renders statements. kw is the leading keyword, empty for plain steps.
func (ts *Typesetter) step(n *construct.Node, st *state, kw string) error {
	content := inline.Typeset(n.Attr(construct.AttrContent), ts.callClass())
	if kw != "" {
		content = phrase(ts.keyword(kw), content)
	}
	st.emit(ts.comment(n, ts.withID(n, content)))
	return nil
}

// jump renders break and continue. The label they refer to is taken
// literally, it is never treated as inline text.
func (ts *Typesetter) jump(n *construct.Node, st *state, kw string) error {
	content := ts.keyword(kw)
	target := strings.TrimSpace(n.Attr(construct.AttrContent))
	if target == "" {
		target = strings.TrimSpace(n.Attr(construct.AttrLabel))
	}
	if target != "" {
		content += " <span class='" + ts.markers.Label + "'>" + html.EscapeString(target) + "</span>"
	}
	st.emit(ts.comment(n, ts.withID(n, content)))
	return nil
}

// --- Helpers ---------------------------------------------------------------

// label emits a label row for loops carrying a label.
func (ts *Typesetter) label(n *construct.Node, st *state) {
	if !n.Kind().TakesLabel() {
		return
	}
	label := strings.TrimSpace(n.Attr(construct.AttrLabel))
	if label == "" {
		return
	}
	if !strings.HasSuffix(label, ":") {
		label += ":"
	}
	st.emitLabel(html.EscapeString(label))
}

// required typesets a required inline attribute. If the attribute is
// missing, the outcome depends on the strictness policy.
func (ts *Typesetter) required(n *construct.Node, key string) (string, error) {
	raw := n.Attr(key)
	if strings.TrimSpace(raw) != "" {
		return ts.expression(raw), nil
	}
	switch ts.strictness {
	case Strict:
		return "", &MissingAttributeError{Kind: n.Kind(), Attribute: key, Path: n.Path()}
	case Warn:
		tracer().Infof("%s is missing attribute %q at %s", n.Kind(), key, n.Path())
		return "<span class='" + ts.markers.Warning + "'>missing " + key + "</span>", nil
	}
	tracer().Debugf("%s is missing attribute %q, rendering empty segment", n.Kind(), key)
	return "", nil
}

// expression typesets conditions and loop bounds. Text without any
// delimiters is treated as math as a whole.
func (ts *Typesetter) expression(raw string) string {
	return inline.Typeset(inline.Delimit(raw), ts.callClass())
}

func (ts *Typesetter) keyword(kw string) string {
	return "<span class='" + ts.markers.Keyword + "'>" + kw + "</span>"
}

func (ts *Typesetter) callClass() string {
	return ts.markers.Text + " " + ts.markers.CallName
}

// withID wraps row content in a span carrying the id of n, if present.
func (ts *Typesetter) withID(n *construct.Node, content string) string {
	id := strings.TrimSpace(n.Attr(construct.AttrID))
	if id == "" {
		return content
	}
	return "<span" + idAttr(id) + ">" + content + "</span>"
}

// comment appends the comment of n to row content, if present.
func (ts *Typesetter) comment(n *construct.Node, content string) string {
	c := strings.TrimSpace(n.Attr(construct.AttrComment))
	if c == "" {
		return content
	}
	var idText string
	if id := strings.TrimSpace(n.Attr(construct.AttrCommentID)); id != "" {
		idText = idAttr(id)
	}
	return content + " <span class='" + ts.markers.Comment + "'" + idText + ">" +
		phrase(ts.stepCommentTag, c) + "</span>"
}

func idAttr(id string) string {
	return " id='" + html.EscapeString(id) + "'"
}

// phrase joins the non-empty parts of a row with single blanks.
func phrase(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
