package typeset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// pixel is the size of a CSS pixel: 1px = 0.75pt.
var pixel = dimen.PT * 3 / 4

// Px converts a number of CSS pixels to a dimension.
func Px(n int) dimen.DU {
	return dimen.DU(n) * pixel
}

func dimenOf(n int) dimen.DU {
	return dimen.DU(n)
}

// pixels converts a dimension to CSS pixels, rounding to the nearest pixel.
func pixels(d dimen.DU) int {
	return int((d + pixel/2) / pixel)
}

// ParseWidth reads a width setting. Widths are given in pixels or points,
// e.g. "30", "30px" or "22.5pt". Numbers without a unit are pixels.
func ParseWidth(width string) (dimen.DU, error) {
	s := strings.ToLower(strings.TrimSpace(width))
	unit := pixel
	switch {
	case strings.HasSuffix(s, "pt"):
		s, unit = strings.TrimSuffix(s, "pt"), dimen.PT
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid width %q", width)
	}
	return dimen.DU(f * float64(unit)), nil
}

// Defaults for typesetter options.
const (
	DefaultIndentationWidth = 30 // pixels per indentation level
	DefaultSpacerGap        = 8  // pixels between line number and code
	DefaultCommentTag       = "#"
	DefaultUnnamedAlgorithm = "UnnamedAlgorithm"
	DefaultMaxDepth         = 256
)

// Strictness is the policy for constructs lacking a required attribute,
// e.g. a while-loop without a condition.
type Strictness int8

// Policies for missing attributes.
const (
	Lenient Strictness = iota // render an empty segment
	Warn                      // render a visible warning marker and trace it
	Strict                    // abort typesetting with a MissingAttributeError
)

func (s Strictness) String() string {
	switch s {
	case Warn:
		return "warn"
	case Strict:
		return "strict"
	}
	return "lenient"
}

// ParseStrictness reads a strictness policy from its name.
func ParseStrictness(name string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lenient":
		return Lenient, nil
	case "warn":
		return Warn, nil
	case "strict":
		return Strict, nil
	}
	return Lenient, fmt.Errorf("unknown strictness policy %q", name)
}

// Markers are the class names attached to the parts of the output, one for
// every logical role. A stylesheet uses them to style rows.
type Markers struct {
	Table      string // table enclosing a single row
	Body       string // tbody of a row table
	Line       string // tr of a row
	LineNumber string // line number cell
	Spacer     string // indentation spacer cell
	Text       string // any text
	Keyword    string // keywords: if, for, while, return, …
	Label      string // loop labels, in label rows and in break/continue
	Comment    string // trailing comments
	CallName   string // algorithm names and call-like tokens
	Warning    string // markers for missing attributes
}

// DefaultMarkers returns the class names in use by Algotype stylesheets.
func DefaultMarkers() Markers {
	return Markers{
		Table:      "algotype-code-row-table",
		Body:       "algotype-code-row-tbody",
		Line:       "algotype-algorithm-line",
		LineNumber: "algotype-algorithm-line-number",
		Spacer:     "algotype-line-number-space",
		Text:       "algotype-text",
		Keyword:    "algotype-keyword",
		Label:      "algotype-label",
		Comment:    "algotype-step-comment",
		CallName:   "algotype-algorithm-name",
		Warning:    "algotype-warning",
	}
}

// Typesetter renders algorithms. A Typesetter holds configuration only and
// may be used for any number of algorithms, concurrently as well.
type Typesetter struct {
	indentation      dimen.DU
	gap              dimen.DU
	headerCommentTag string
	stepCommentTag   string
	unnamed          string
	maxDepth         int
	strictness       Strictness
	markers          Markers
}

// New creates a typesetter with options, if you need any.
// Use it like this:
//
//     ts := typeset.New(typeset.IndentationWidth(20), typeset.StepCommentTag("//"))
//     markup, err := ts.Typeset(algorithm)
//
func New(opts ...Option) *Typesetter {
	ts := &Typesetter{
		indentation:      Px(DefaultIndentationWidth),
		gap:              Px(DefaultSpacerGap),
		headerCommentTag: DefaultCommentTag,
		stepCommentTag:   DefaultCommentTag,
		unnamed:          DefaultUnnamedAlgorithm,
		maxDepth:         DefaultMaxDepth,
		markers:          DefaultMarkers(),
	}
	for _, option := range opts {
		option(ts)
	}
	return ts
}

// Option is a type to help initializing typesetters at creation time.
type Option func(*Typesetter)

// IndentationWidth sets the width of one indentation level, in pixels.
func IndentationWidth(px int) Option {
	return Indentation(Px(px))
}

// Indentation sets the width of one indentation level as a dimension.
func Indentation(d dimen.DU) Option {
	return func(ts *Typesetter) {
		if d >= 0 {
			ts.indentation = d
		}
	}
}

// SpacerGap sets the distance between the line number and the code, in
// pixels. The gap is added once, regardless of the indentation level.
func SpacerGap(px int) Option {
	return Gap(Px(px))
}

// Gap sets the distance between the line number and the code as a dimension.
func Gap(d dimen.DU) Option {
	return func(ts *Typesetter) {
		if d >= 0 {
			ts.gap = d
		}
	}
}

// HeaderCommentTag sets the string starting the comment of an algorithm's header.
func HeaderCommentTag(tag string) Option {
	return func(ts *Typesetter) {
		ts.headerCommentTag = tag
	}
}

// StepCommentTag sets the string starting row comments.
func StepCommentTag(tag string) Option {
	return func(ts *Typesetter) {
		ts.stepCommentTag = tag
	}
}

// UnnamedAlgorithm sets the name displayed for algorithms without a name.
func UnnamedAlgorithm(name string) Option {
	return func(ts *Typesetter) {
		ts.unnamed = name
	}
}

// MaxDepth limits the nesting depth of constructs. Values < 1 are ignored.
func MaxDepth(n int) Option {
	return func(ts *Typesetter) {
		if n > 0 {
			ts.maxDepth = n
		}
	}
}

// WithStrictness sets the policy for constructs with missing attributes.
func WithStrictness(s Strictness) Option {
	return func(ts *Typesetter) {
		ts.strictness = s
	}
}

// WithMarkers sets the class names of the output. Empty fields of m
// keep their default.
func WithMarkers(m Markers) Option {
	return func(ts *Typesetter) {
		d := DefaultMarkers()
		ts.markers = Markers{
			Table:      or(m.Table, d.Table),
			Body:       or(m.Body, d.Body),
			Line:       or(m.Line, d.Line),
			LineNumber: or(m.LineNumber, d.LineNumber),
			Spacer:     or(m.Spacer, d.Spacer),
			Text:       or(m.Text, d.Text),
			Keyword:    or(m.Keyword, d.Keyword),
			Label:      or(m.Label, d.Label),
			Comment:    or(m.Comment, d.Comment),
			CallName:   or(m.CallName, d.CallName),
			Warning:    or(m.Warning, d.Warning),
		}
	}
}

// Markers returns the class names a typesetter attaches to its output.
func (ts *Typesetter) Markers() Markers {
	return ts.markers
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
