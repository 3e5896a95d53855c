package typeset

import (
	"regexp"
	"strings"

	"github.com/npillmayer/algotype/construct"
)

var parameterSeparator = regexp.MustCompile(`\s*,\s*|\s+`)

// header renders the header line of an algorithm: its name, the parameter
// list and an optional comment.
func (ts *Typesetter) header(algorithm *construct.Node) string {
	name := strings.TrimSpace(algorithm.Attr(construct.AttrName))
	if name == "" {
		name = ts.unnamed
	}
	text := ParameterList(algorithm.Attr(construct.AttrParameters))
	if c := strings.TrimSpace(algorithm.Attr(construct.AttrComment)); c != "" {
		text += " " + phrase(ts.headerCommentTag, c)
	}
	return "<span class='" + ts.callClass() + "'>" + name + "</span>" +
		"<span class='" + ts.markers.Text + "'>" + text + "</span><br/>\n"
}

// ParameterList formats the raw parameter list of an algorithm as a math
// region. Parameters may be separated by commas and/or whitespace, and the
// list may be enclosed in parentheses:
//
//     "(A, p  r)"  →  "$(A, p, r)$"
//
// An empty list results in "$()$".
func ParameterList(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "$()$"
	}
	var params []string
	for _, p := range parameterSeparator.Split(raw, -1) {
		if p != "" {
			params = append(params, p)
		}
	}
	return "$(" + strings.Join(params, ", ") + ")$"
}
