package dom

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/algotype/construct"
	"golang.org/x/net/html"
)

// ErrNotAnAlgorithm is returned if conversion is started on anything else
// than an algorithm element.
var ErrNotAnAlgorithm = errors.New("dom: element is not an algorithm")

// FromHTML converts an algorithm element and its descendents to a construct
// tree. The returned root is of kind construct.Algorithm.
func FromHTML(h *html.Node) (*construct.Node, error) {
	if !IsAlgorithm(h) {
		return nil, ErrNotAnAlgorithm
	}
	root, err := convert(h)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot convert algorithm %q: %w", attr(h, construct.AttrName), err)
	}
	return root, nil
}

// IsAlgorithm is true for algorithm elements.
func IsAlgorithm(h *html.Node) bool {
	return h != nil && h.Type == html.ElementNode &&
		construct.KindForTag(h.Data) == construct.Algorithm
}

// markupAttributes hold text which is copied into the output markup. The
// parser has decoded their entities, so they are escaped again to read like
// the inner HTML of terminal constructs.
var markupAttributes = map[string]bool{
	construct.AttrName:       true,
	construct.AttrParameters: true,
	construct.AttrCondition:  true,
	construct.AttrInit:       true,
	construct.AttrTo:         true,
	construct.AttrStep:       true,
	construct.AttrComment:    true,
}

func convert(h *html.Node) (*construct.Node, error) {
	kind := construct.KindForTag(h.Data)
	opts := make([]construct.Option, 0, len(h.Attr)+2)
	opts = append(opts, construct.Tag(h.Data))
	for _, a := range h.Attr {
		if a.Namespace != "" {
			continue
		}
		key, val := strings.ToLower(a.Key), a.Val
		if markupAttributes[key] {
			val = html.EscapeString(val)
		}
		opts = append(opts, construct.Attr(key, val))
	}
	switch kind {
	case construct.Break, construct.Continue:
		opts = append(opts, construct.Content(strings.TrimSpace(TextContent(h))))
	case construct.Step, construct.Return, construct.Print, construct.Output, construct.Yield:
		inner, err := InnerHTML(h)
		if err != nil {
			return nil, err
		}
		opts = append(opts, construct.Content(strings.TrimSpace(inner)))
	}
	n := construct.New(kind, opts...)
	if kind.IsTerminal() {
		return n, nil
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		child, err := convert(ch)
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
	tracer().Debugf("converted <%s> with %d children", h.Data, n.ChildCount())
	return n, nil
}

// InnerHTML renders the children of an HTML node.
func InnerHTML(h *html.Node) (string, error) {
	var b bytes.Buffer
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := html.Render(&b, ch); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// TextContent collects the text of an HTML node and all its descendents.
func TextContent(h *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(h)
	return b.String()
}

func attr(h *html.Node, key string) string {
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
