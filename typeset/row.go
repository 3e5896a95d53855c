package typeset

import (
	"io"
	"text/template"
)

// Row is a line of typeset pseudocode.
type Row struct {
	Number      int    // line number; 0 for label rows
	Indentation int    // nesting level below the algorithm
	Label       bool   // label rows do not carry a line number
	Content     string // markup for the content cell
}

type rowParams struct {
	M            Markers
	Row          Row
	Width        int
	ContentClass string
}

var rowTmpl = template.Must(template.New("row").Parse(rowTemplate))

// writeRow writes the markup for a row: a table with cells for the line
// number, the indentation spacer and the content.
func (ts *Typesetter) writeRow(w io.Writer, row Row) error {
	params := rowParams{
		M:            ts.markers,
		Row:          row,
		Width:        ts.spacerWidth(row.Indentation),
		ContentClass: ts.markers.Text,
	}
	if row.Label {
		params.ContentClass = ts.markers.Label + " " + ts.markers.Text
	}
	return rowTmpl.Execute(w, params)
}

// spacerWidth returns the width of the spacer cell in pixels.
func (ts *Typesetter) spacerWidth(level int) int {
	return pixels(ts.indentation*dimenOf(level) + ts.gap)
}

const rowTemplate = `<table class='{{ .M.Table }}'>
  <tbody class='{{ .M.Body }}'>
    <tr class='{{ .M.Line }}'>
      <td class='{{ .M.LineNumber }}'>{{ if not .Row.Label }}{{ .Row.Number }}{{ end }}</td>
      <td class='{{ .M.Spacer }}' width='{{ .Width }}px'></td>
      <td class='{{ .ContentClass }}'>{{ .Row.Content }}</td>
    </tr>
  </tbody>
</table>
`
