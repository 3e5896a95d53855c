package typeset

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/algotype/construct"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	c    = construct.New
	attr = construct.Attr
	text = construct.Content
)

type rowShape struct {
	Number      int
	Indentation int
	Label       bool
}

func shapes(rows []Row) []rowShape {
	s := make([]rowShape, len(rows))
	for i, r := range rows {
		s[i] = rowShape{r.Number, r.Indentation, r.Label}
	}
	return s
}

func nestedAlgorithm() *construct.Node {
	return c(construct.Algorithm, attr("name", "Nested")).Add(
		c(construct.Step, text("$i \\gets 0$")),
		c(construct.While, attr("condition", "i < n"), attr("label", "outer")).Add(
			c(construct.If, attr("condition", "$A[i] = x$")).Add(
				c(construct.Break, text("outer")),
			),
			c(construct.Else).Add(
				c(construct.RepeatUntil, attr("condition", "done")).Add(
					c(construct.Step, text("Work$(i)$")),
				),
			),
		),
		c(construct.Return, text("$i$")),
	)
}

func TestNumberingAndIndentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "algotype.typeset")
	defer teardown()
	//
	rows, err := New().Rows(nestedAlgorithm())
	require.NoError(t, err)
	want := []rowShape{
		{1, 0, false},
		{0, 0, true}, // outer:
		{2, 0, false},
		{3, 1, false},
		{4, 2, false},
		{5, 1, false},
		{6, 2, false},
		{7, 3, false},
		{8, 2, false}, // until
		{9, 0, false},
	}
	if diff := cmp.Diff(want, shapes(rows)); diff != "" {
		t.Errorf("row shapes mismatch (-want +got):\n%s", diff)
	}
}

func TestRowMarkup(t *testing.T) {
	alg := c(construct.Algorithm, attr("name", "Swap"), attr("parameters", "a b")).Add(
		c(construct.Step, text("$t \\gets a$"), attr("id", "s1"), attr("comment", "save")),
	)
	markup, err := New().Typeset(alg)
	require.NoError(t, err)
	want := "<span class='algotype-text algotype-algorithm-name'>Swap</span>" +
		"<span class='algotype-text'>$(a, b)$</span><br/>\n" +
		`<table class='algotype-code-row-table'>
  <tbody class='algotype-code-row-tbody'>
    <tr class='algotype-algorithm-line'>
      <td class='algotype-algorithm-line-number'>1</td>
      <td class='algotype-line-number-space' width='8px'></td>
      <td class='algotype-text'><span id='s1'>$t \gets a$</span> <span class='algotype-step-comment'># save</span></td>
    </tr>
  </tbody>
</table>
`
	if diff := cmp.Diff(want, markup); diff != "" {
		t.Errorf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelRowMarkup(t *testing.T) {
	alg := c(construct.Algorithm).Add(
		c(construct.Forever, attr("label", "  loop ")).Add(c(construct.Step, text("Tick"))),
	)
	markup, err := New(SpacerGap(10), IndentationWidth(20)).Typeset(alg)
	require.NoError(t, err)
	assert.Contains(t, markup, "<td class='algotype-algorithm-line-number'></td>")
	assert.Contains(t, markup, "<td class='algotype-label algotype-text'>loop:</td>")
	assert.Contains(t, markup, "width='10px'")
	assert.Contains(t, markup, "width='30px'") // one level deeper
	assert.Contains(t, markup, "UnnamedAlgorithm")
}

func TestHeaderShapes(t *testing.T) {
	kw := func(k string) string { return "<span class='algotype-keyword'>" + k + "</span>" }
	tt := []struct {
		name string
		node *construct.Node
		want string
	}{
		{"if", c(construct.If, attr("condition", "x > 0")), kw("if") + " $x > 0$ " + kw("then")},
		{"else-if", c(construct.ElseIf, attr("condition", "$x < 0$")), kw("else if") + " $x < 0$ " + kw("then")},
		{"else", c(construct.Else), kw("else")},
		{"for-each", c(construct.ForEach, attr("condition", "v \\In V")), kw("for each") + " $v \\In V$:"},
		{"for", c(construct.For, attr("init", "i = 1"), attr("to", "n")), kw("for") + " $i = 1$ " + kw("to") + " $n$:"},
		{
			"for with step",
			c(construct.For, attr("init", "i = 1"), attr("to", "n"), attr("step", "2")),
			kw("for") + " $i = 1$ " + kw("to") + " $n$ " + kw("step") + " $2$:",
		},
		{"for-downto", c(construct.ForDownto, attr("init", "i = n"), attr("to", "1")), kw("for") + " $i = n$ " + kw("downto") + " $1$:"},
		{"forever", c(construct.Forever), kw("forever") + ":"},
		{"while", c(construct.While, attr("condition", "Running$()$")), kw("while") +
			" <span class='algotype-text algotype-algorithm-name'>Running</span>$()$:"},
		{"step", c(construct.Step, text("Sort$(A)$")), "<span class='algotype-text algotype-algorithm-name'>Sort</span>$(A)$"},
		{"step plain", c(construct.Step, text("plain")), "<span class='algotype-text algotype-algorithm-name'>plain</span>"},
		{"return", c(construct.Return, text("$x$")), kw("return") + " $x$"},
		{"print", c(construct.Print, text("$x$")), kw("print") + " $x$"},
		{"output", c(construct.Output, text("$x$")), kw("output") + " $x$"},
		{"yield", c(construct.Yield, text("$x$")), kw("yield") + " $x$"},
		{"break", c(construct.Break), kw("break")},
		{"continue with label", c(construct.Continue, text(" outer ")), kw("continue") + " <span class='algotype-label'>outer</span>"},
		{"break label is literal", c(construct.Break, text("a$b")), kw("break") + " <span class='algotype-label'>a$b</span>"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := New().Rows(c(construct.Algorithm).Add(tc.node))
			require.NoError(t, err)
			require.NotEmpty(t, rows)
			if diff := cmp.Diff(tc.want, rows[0].Content); diff != "" {
				t.Errorf("header mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRepeatUntilEmitsTwoRows(t *testing.T) {
	for n := 0; n < 4; n++ {
		repeat := c(construct.RepeatUntil, attr("condition", "done"), attr("id", "r"), attr("comment", "loop"))
		for i := 0; i < n; i++ {
			repeat.Add(c(construct.Step, text("$x$")))
		}
		rows, err := New().Rows(c(construct.Algorithm).Add(repeat))
		require.NoError(t, err)
		require.Len(t, rows, n+2)
		assert.Equal(t, "<span id='r'><span class='algotype-keyword'>repeat</span></span>", rows[0].Content)
		last := rows[len(rows)-1]
		assert.Equal(t, n+2, last.Number)
		assert.Equal(t, 0, last.Indentation)
		assert.Equal(t, "<span class='algotype-keyword'>until</span> $done$ <span class='algotype-step-comment'># loop</span>",
			last.Content)
	}
}

func TestCommentAndIDs(t *testing.T) {
	alg := c(construct.Algorithm).Add(
		c(construct.If, attr("condition", "x"), attr("id", "cond"), attr("comment", " check "), attr("comment-id", "c1")),
	)
	rows, err := New(StepCommentTag("//")).Rows(alg)
	require.NoError(t, err)
	want := "<span id='cond'><span class='algotype-keyword'>if</span> $x$ <span class='algotype-keyword'>then</span></span>" +
		" <span class='algotype-step-comment' id='c1'>// check</span>"
	assert.Equal(t, want, rows[0].Content)
}

func TestUnknownConstructAborts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "algotype.typeset")
	defer teardown()
	//
	alg := c(construct.Algorithm).Add(
		c(construct.Step, text("$a$")),
		c(construct.While, attr("condition", "x")).Add(
			c(construct.Step, text("$b$")),
			c(construct.Unknown, construct.Tag("alg-foo")),
		),
		c(construct.Step, text("$c$")),
	)
	markup, err := New().Typeset(alg)
	assert.Empty(t, markup)
	var unknown *UnknownConstructError
	require.True(t, errors.As(err, &unknown), "expected UnknownConstructError, got %v", err)
	assert.Equal(t, "alg-foo", unknown.Tag)
	assert.Equal(t, "algorithm/while[1]/alg-foo[1]", unknown.Path)
}

func TestNestedAlgorithmIsUnknown(t *testing.T) {
	alg := c(construct.Algorithm).Add(c(construct.Algorithm))
	_, err := New().Typeset(alg)
	var unknown *UnknownConstructError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected nested algorithm to be rejected, got %v", err)
	}
	if unknown.Kind != construct.Algorithm {
		t.Errorf("expected kind algorithm, is %v", unknown.Kind)
	}
}

func TestRootMustBeAlgorithm(t *testing.T) {
	_, err := New().Typeset(c(construct.Step))
	assert.ErrorIs(t, err, ErrNoAlgorithm)
	_, err = New().Typeset(nil)
	assert.ErrorIs(t, err, ErrNoAlgorithm)
}

func TestDepthExceeded(t *testing.T) {
	root := c(construct.Algorithm)
	n := root
	for i := 0; i < 5; i++ {
		ch := c(construct.Forever)
		n.Add(ch)
		n = ch
	}
	n.Add(c(construct.Step, text("$x$")))
	_, err := New(MaxDepth(6)).Typeset(root)
	assert.NoError(t, err)
	markup, err := New(MaxDepth(5)).Typeset(root)
	assert.Empty(t, markup)
	var deep *DepthExceededError
	require.True(t, errors.As(err, &deep), "expected DepthExceededError, got %v", err)
	assert.Equal(t, 6, deep.Depth)
	assert.Equal(t, 5, deep.Limit)
	assert.True(t, strings.HasSuffix(deep.Path, "step[0]"), deep.Path)
}

func TestStrictness(t *testing.T) {
	alg := c(construct.Algorithm).Add(
		c(construct.While).Add(c(construct.Step, text("$x$"))),
	)
	rows, err := New().Rows(alg)
	require.NoError(t, err)
	assert.Equal(t, "<span class='algotype-keyword'>while</span>:", rows[0].Content)
	assert.Len(t, rows, 2)
	//
	rows, err = New(WithStrictness(Warn)).Rows(alg)
	require.NoError(t, err)
	assert.Contains(t, rows[0].Content, "<span class='algotype-warning'>missing condition</span>")
	//
	_, err = New(WithStrictness(Strict)).Typeset(alg)
	var missing *MissingAttributeError
	require.True(t, errors.As(err, &missing), "expected MissingAttributeError, got %v", err)
	assert.Equal(t, construct.AttrCondition, missing.Attribute)
	assert.Equal(t, construct.While, missing.Kind)
}

func TestParseStrictness(t *testing.T) {
	for name, want := range map[string]Strictness{"": Lenient, "Lenient": Lenient, "warn": Warn, " strict ": Strict} {
		s, err := ParseStrictness(name)
		assert.NoError(t, err)
		assert.Equal(t, want, s)
	}
	_, err := ParseStrictness("pedantic")
	assert.Error(t, err)
}

func TestParameterList(t *testing.T) {
	for raw, want := range map[string]string{
		"":               "$()$",
		"  ":             "$()$",
		"()":             "$()$",
		"A":              "$(A)$",
		"A, p, r":        "$(A, p, r)$",
		"(A,p r)":        "$(A, p, r)$",
		" ( G , s ) ":    "$(G, s)$",
		"a  b\tc":        "$(a, b, c)$",
		"x_1, \\alpha_2": "$(x_1, \\alpha_2)$",
	} {
		if got := ParameterList(raw); got != want {
			t.Errorf("ParameterList(%q): want %q, got %q", raw, want, got)
		}
	}
}

func TestHeaderComment(t *testing.T) {
	alg := c(construct.Algorithm, attr("name", "Dijkstra"), attr("parameters", "G, s"), attr("comment", "shortest paths"))
	markup, err := New(HeaderCommentTag("##")).Typeset(alg)
	require.NoError(t, err)
	assert.Equal(t, "<span class='algotype-text algotype-algorithm-name'>Dijkstra</span>"+
		"<span class='algotype-text'>$(G, s)$ ## shortest paths</span><br/>\n", markup)
}

func TestCustomMarkers(t *testing.T) {
	ts := New(WithMarkers(Markers{Keyword: "kw", LineNumber: "ln"}))
	markup, err := ts.Typeset(c(construct.Algorithm).Add(c(construct.Return, text("$0$"))))
	require.NoError(t, err)
	assert.Contains(t, markup, "<span class='kw'>return</span>")
	assert.Contains(t, markup, "<td class='ln'>1</td>")
	assert.Contains(t, markup, "class='algotype-line-number-space'")
}

func TestPixels(t *testing.T) {
	for _, px := range []int{0, 1, 8, 30, 68, 1000} {
		if got := pixels(Px(px)); got != px {
			t.Errorf("expected %dpx to survive conversion, got %dpx", px, got)
		}
	}
	ts := New()
	assert.Equal(t, 8, ts.spacerWidth(0))
	assert.Equal(t, 68, ts.spacerWidth(2))
}

func TestParseWidth(t *testing.T) {
	for input, px := range map[string]int{
		"30":      30,
		" 30px ":  30,
		"22.5pt":  30,
		"15PT":    20,
		"0":       0,
		"7.6px":   8,
	} {
		d, err := ParseWidth(input)
		if err != nil {
			t.Errorf("ParseWidth(%q): unexpected error %v", input, err)
			continue
		}
		if got := pixels(d); got != px {
			t.Errorf("ParseWidth(%q): expected %dpx, got %dpx", input, px, got)
		}
	}
	for _, input := range []string{"", "px", "-3px", "3em", "wide"} {
		if _, err := ParseWidth(input); err == nil {
			t.Errorf("ParseWidth(%q): expected an error", input)
		}
	}
	d, err := ParseWidth("15pt")
	require.NoError(t, err)
	ts := New(Indentation(d), Gap(dimen.PT*6))
	assert.Equal(t, 28, ts.spacerWidth(1), "15pt + 6pt = 28px")
}

// --- Properties on random trees --------------------------------------------

var blocks = []construct.Kind{
	construct.If, construct.ElseIf, construct.Else, construct.ForEach, construct.For,
	construct.ForDownto, construct.Forever, construct.While, construct.RepeatUntil,
}

var terminals = []construct.Kind{
	construct.Step, construct.Return, construct.Print, construct.Output,
	construct.Yield, construct.Break, construct.Continue,
}

func randomTree(rnd *rand.Rand, n *construct.Node, depth int) {
	count := rnd.Intn(4)
	for i := 0; i < count; i++ {
		if depth < 5 && rnd.Intn(2) == 0 {
			opts := []construct.Option{attr("condition", "x"), attr("init", "i"), attr("to", "n")}
			if rnd.Intn(3) == 0 {
				opts = append(opts, attr("label", "L"))
			}
			ch := c(blocks[rnd.Intn(len(blocks))], opts...)
			n.Add(ch)
			randomTree(rnd, ch, depth+1)
		} else {
			n.Add(c(terminals[rnd.Intn(len(terminals))], text("$x$")))
		}
	}
}

// expectedShapes derives the rows a node must produce from its position
// in the tree.
func expectedShapes(n *construct.Node, level int, next *int, shapes *[]rowShape) {
	for _, ch := range n.Children() {
		if ch.Kind().TakesLabel() && ch.Attr("label") != "" {
			*shapes = append(*shapes, rowShape{0, level, true})
		}
		*shapes = append(*shapes, rowShape{*next, level, false})
		*next++
		expectedShapes(ch, level+1, next, shapes)
		if ch.Kind() == construct.RepeatUntil {
			*shapes = append(*shapes, rowShape{*next, level, false})
			*next++
		}
	}
}

func TestRandomTrees(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	ts := New()
	for i := 0; i < 200; i++ {
		alg := c(construct.Algorithm)
		randomTree(rnd, alg, 0)
		rows, err := ts.Rows(alg)
		require.NoError(t, err)
		var want []rowShape
		next := 1
		expectedShapes(alg, 0, &next, &want)
		if diff := cmp.Diff(want, shapes(rows)); diff != "" {
			t.Fatalf("tree #%d: row shapes mismatch (-want +got):\n%s", i, diff)
		}
		number := 1
		for _, r := range rows {
			if r.Label {
				continue
			}
			if r.Number != number {
				t.Fatalf("tree #%d: expected line number %d, is %d", i, number, r.Number)
			}
			number++
		}
	}
}
