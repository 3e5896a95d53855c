package algotype

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/algotype/dom"
	"github.com/npillmayer/algotype/lint"
	"github.com/npillmayer/algotype/style"
	"github.com/npillmayer/algotype/typeset"
)

// ErrNoDocument is returned if processing is started without a document.
var ErrNoDocument = errors.New("algotype: no document")

// Processor typesets all the algorithms of HTML pages.
// A processor may be re-used for any number of pages.
type Processor struct {
	typesetter      *typeset.Typesetter
	mathJax         bool
	mathJaxURL      string
	styles          bool
	userCSS         *style.Stylesheet
	lineNumberWidth int
	lint            bool
}

// Option is a type to help initializing processors at creation time.
type Option func(*Processor)

// New creates a processor. Without options, pages get typeset output
// appended, but no MathJax and no stylesheet.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, option := range opts {
		option(p)
	}
	if p.typesetter == nil {
		p.typesetter = typeset.New()
	}
	return p
}

// WithTypesetter sets the typesetter to use for algorithms.
func WithTypesetter(ts *typeset.Typesetter) Option {
	return func(p *Processor) {
		p.typesetter = ts
	}
}

// MathJax is an option to inject MathJax into pages containing algorithms.
// An empty url selects MathJaxURL.
func MathJax(url string) Option {
	return func(p *Processor) {
		p.mathJax = true
		p.mathJaxURL = url
		if url == "" {
			p.mathJaxURL = MathJaxURL
		}
	}
}

// Stylesheet is an option to inject a stylesheet into pages containing
// algorithms. The stylesheet consists of the default rules (see
// style.Default) for all selectors the page does not style by itself,
// followed by the rules of user, which may be nil.
func Stylesheet(user *style.Stylesheet) Option {
	return func(p *Processor) {
		p.styles = true
		p.userCSS = user
	}
}

// LineNumberWidth sets the width of line number cells in the injected
// stylesheet, in pixels.
func LineNumberWidth(px int) Option {
	return func(p *Processor) {
		p.lineNumberWidth = px
	}
}

// Lint is an option to check every algorithm with lint.Check and include
// the findings in the report.
func Lint() Option {
	return func(p *Processor) {
		p.lint = true
	}
}

// Failure is the error for a single algorithm which could not be typeset.
type Failure struct {
	Index int    // position of the algorithm within the page
	Name  string // name of the algorithm
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("algorithm #%d %q: %v", f.Index, f.Name, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Finding is a lint issue of a single algorithm.
type Finding struct {
	Index int
	Name  string
	lint.Issue
}

func (f Finding) String() string {
	return fmt.Sprintf("algorithm #%d %q: %s", f.Index, f.Name, f.Issue)
}

// Report summarizes the processing of a page.
type Report struct {
	Algorithms int         // number of algorithms found
	Typeset    int         // number of algorithms typeset successfully
	Failures   []*Failure  // algorithms which could not be typeset
	Findings   []Finding   // lint findings, if linting is enabled
	Injected   []atom.Atom // elements injected into the page's head
}

// Err returns an error if any algorithm failed, nil otherwise.
// The error wraps the first failure.
func (r *Report) Err() error {
	switch len(r.Failures) {
	case 0:
		return nil
	case 1:
		return r.Failures[0]
	}
	return fmt.Errorf("%d of %d algorithms failed, first: %w", len(r.Failures), r.Algorithms, r.Failures[0])
}

// Process typesets all algorithms of a parsed HTML document in place.
//
// Algorithms are independent of each other: an algorithm failing to typeset
// gets no output, but does not stop the others. Failures are collected in the
// report. The error return is reserved for problems with the document as a
// whole.
func (p *Processor) Process(doc *html.Node) (*Report, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	report := &Report{}
	algorithms := dom.FindAlgorithms(doc)
	report.Algorithms = len(algorithms)
	tracer().Infof("found %d algorithms", len(algorithms))
	for i, a := range algorithms {
		name := strings.TrimSpace(attr(a, "name"))
		if err := p.algorithm(i, name, a, report); err != nil {
			tracer().Errorf("algorithm #%d %q: %v", i, name, err)
			report.Failures = append(report.Failures, &Failure{Index: i, Name: name, Err: err})
			continue
		}
		report.Typeset++
	}
	if report.Algorithms > 0 {
		p.inject(doc, report)
	}
	return report, nil
}

func (p *Processor) algorithm(i int, name string, a *html.Node, report *Report) error {
	root, err := dom.FromHTML(a)
	if err != nil {
		return err
	}
	if p.lint {
		for _, issue := range lint.Check(root) {
			report.Findings = append(report.Findings, Finding{Index: i, Name: name, Issue: issue})
		}
	}
	markup, err := p.typesetter.Typeset(root)
	if err != nil {
		return err
	}
	_, err = dom.Attach(a, markup)
	return err
}

// inject adds MathJax and the stylesheet to the head of doc, as requested
// by the processor's options.
func (p *Processor) inject(doc *html.Node, report *Report) {
	if !p.mathJax && !p.styles {
		return
	}
	head := dom.Head(doc)
	if head == nil {
		tracer().Infof("document has no head, cannot inject MathJax or styles")
		return
	}
	if p.styles {
		sheet := p.stylesheet(doc)
		head.AppendChild(dom.Element(atom.Style, "\n"+sheet.String()+"\n"))
		report.Injected = append(report.Injected, atom.Style)
	}
	if p.mathJax && injectMathJax(head, p.mathJaxURL) {
		report.Injected = append(report.Injected, atom.Script)
	}
}

// stylesheet assembles the stylesheet to inject into doc.
func (p *Processor) stylesheet(doc *html.Node) *style.Stylesheet {
	var styled []string
	for _, sheet := range style.ExtractStyleElements(doc) {
		styled = append(styled, sheet.Selectors()...)
	}
	sheet := style.Default(p.typesetter.Markers(), p.lineNumberWidth).Without(styled)
	sheet.AppendRules(p.userCSS)
	return sheet
}

// ProcessHTML parses an HTML page from r, typesets its algorithms and
// writes the resulting page to w.
func (p *Processor) ProcessHTML(r io.Reader, w io.Writer) (*Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("algotype: cannot parse page: %w", err)
	}
	report, err := p.Process(doc)
	if err != nil {
		return report, err
	}
	if err := html.Render(w, doc); err != nil {
		return report, fmt.Errorf("algotype: cannot write page: %w", err)
	}
	return report, nil
}
