package style

import (
	"strconv"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/algotype/typeset"
)

// LineNumberWidth is the default width of the line number cell in pixels.
// Algorithms with 100 rows or more may need a wider cell.
const LineNumberWidth = 25

type declarations [][2]string

// Default creates the default stylesheet for output carrying the given
// markers. lineNumberWidth is in pixels; values ≤ 0 select LineNumberWidth.
func Default(m typeset.Markers, lineNumberWidth int) *Stylesheet {
	if lineNumberWidth <= 0 {
		lineNumberWidth = LineNumberWidth
	}
	sheet := &Stylesheet{}
	sheet.add(m.Table, declarations{
		{"border-collapse", "collapse"},
		{"border-spacing", "0"},
		{"margin", "0"},
	})
	sheet.add(m.Body, declarations{
		{"vertical-align", "baseline"},
	})
	sheet.add(m.LineNumber, declarations{
		{"width", strconv.Itoa(lineNumberWidth) + "px"},
		{"text-align", "right"},
		{"vertical-align", "top"},
		{"padding", "0"},
	})
	sheet.add(m.Spacer, declarations{
		{"padding", "0"},
	})
	sheet.add(m.Text, declarations{
		{"font-family", "'Times New Roman', Times, serif"},
		{"padding", "0"},
	})
	sheet.add(m.Keyword, declarations{
		{"font-weight", "bold"},
	})
	sheet.add(m.CallName, declarations{
		{"font-variant", "small-caps"},
		{"font-weight", "normal"},
	})
	sheet.add(m.Label, declarations{
		{"font-style", "italic"},
	})
	sheet.add(m.Comment, declarations{
		{"font-style", "italic"},
		{"color", "#555555"},
	})
	sheet.add(m.Warning, declarations{
		{"color", "#cc0000"},
		{"font-weight", "bold"},
	})
	return sheet
}

// add appends a rule for a class selector.
func (sheet *Stylesheet) add(class string, decls declarations) {
	if class == "" {
		return
	}
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = "." + class
	rule.Selectors = []string{rule.Prelude}
	for _, kv := range decls {
		d := css.NewDeclaration()
		d.Property, d.Value = kv[0], kv[1]
		rule.Declarations = append(rule.Declarations, d)
	}
	sheet.css.Rules = append(sheet.css.Rules, rule)
}
