package dom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrDetached is returned if output is to be attached to an algorithm
// element without a parent.
var ErrDetached = errors.New("dom: algorithm element has no parent")

// FindAlgorithms collects all algorithm elements of a parse tree, in
// document order. Algorithm elements nested inside another algorithm are
// part of the outer one and are not collected.
func FindAlgorithms(doc *html.Node) []*html.Node {
	var algorithms []*html.Node
	var find func(*html.Node)
	find = func(h *html.Node) {
		if IsAlgorithm(h) {
			algorithms = append(algorithms, h)
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			find(ch)
		}
	}
	if doc != nil {
		find(doc)
	}
	return algorithms
}

// Attach parses typeset markup and appends it to the parent of an algorithm
// element, wrapped into a left-aligned paragraph. It returns the paragraph.
func Attach(algorithm *html.Node, markup string) (*html.Node, error) {
	if algorithm == nil || algorithm.Parent == nil {
		return nil, ErrDetached
	}
	p := Element(atom.P, "", html.Attribute{Key: "style", Val: "text-align:left"})
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		p.AppendChild(n)
	}
	algorithm.Parent.AppendChild(p)
	return p, nil
}

// Element creates a detached element node, with optional text content.
func Element(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	e := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
	if text != "" {
		e.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return e
}

// Head returns the <head> element of a document, or nil.
func Head(doc *html.Node) *html.Node {
	return findElement(atom.Head, doc)
}

// Body returns the <body> element of a document, or nil.
func Body(doc *html.Node) *html.Node {
	return findElement(atom.Body, doc)
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
