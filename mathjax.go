package algotype

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/algotype/dom"
)

// MathJaxURL is the default location to load MathJax from.
const MathJaxURL = "https://cdn.mathjax.org/mathjax/latest/MathJax.js?config=TeX-AMS_CHTML"

// MathJaxConfigType is the script type MathJax reads its configuration from.
const MathJaxConfigType = "text/x-mathjax-config"

// MathJaxConfig configures '$' as inline math delimiter and defines macros
// for words set in math mode in the same font as keywords: \And, \Or, \Not,
// \Is, \In, \Mapped and \Nil.
const MathJaxConfig = `MathJax.Hub.Config({` +
	`tex2jax: {inlineMath: [['$','$']]},` +
	`TeX: {` +
	`Macros: {` +
	`And:     "\\mathbf{and}",` +
	`Or:      "\\mathbf{or}",` +
	`Not:     "\\mathbf{not}",` +
	`Is:      "\\mathbf{is}",` +
	`In:      "\\mathbf{in}",` +
	`Mapped:  "\\mathbf{mapped}",` +
	`Nil:     "\\mathbf{nil}"` +
	`}` +
	`}` +
	`});`

// injectMathJax appends the MathJax loader and its configuration to head,
// unless a script with the same source is already present.
func injectMathJax(head *html.Node, url string) bool {
	for ch := head.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && ch.DataAtom == atom.Script && attr(ch, "src") == url {
			tracer().Debugf("MathJax already loaded from %s", url)
			return false
		}
	}
	head.AppendChild(dom.Element(atom.Script, "",
		html.Attribute{Key: "async", Val: "true"},
		html.Attribute{Key: "src", Val: url},
	))
	head.AppendChild(dom.Element(atom.Script, MathJaxConfig,
		html.Attribute{Key: "type", Val: MathJaxConfigType},
	))
	return true
}

func attr(h *html.Node, key string) string {
	for _, a := range h.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
