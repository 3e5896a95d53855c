/*
Package constructdbg implements helpers to debug a construct tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package constructdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/algotype/construct"
	tp "github.com/xlab/treeprint"
)

// Dump returns a textual rendering of a construct tree, one line per node,
// showing kinds and attributes.
func Dump(root *construct.Node) string {
	if root == nil {
		return "<empty>\n"
	}
	printer := tp.New()
	printer.SetValue(label(root))
	dump(printer, root)
	return printer.String()
}

func dump(branch tp.Tree, n *construct.Node) {
	for _, ch := range n.Children() {
		if ch.ChildCount() == 0 {
			branch.AddNode(label(ch))
			continue
		}
		dump(branch.AddBranch(label(ch)), ch)
	}
}

func label(n *construct.Node) string {
	keys := n.AttrKeys()
	if len(keys) == 0 {
		return n.Name()
	}
	attrs := make([]string, len(keys))
	for i, k := range keys {
		attrs[i] = fmt.Sprintf("%s=%q", k, n.Attr(k))
	}
	return n.Name() + " " + strings.Join(attrs, " ")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	AttrsTmpl *template.Template
}

// ToGraphViz outputs a diagram for a construct tree. The diagram is in
// GraphViz (DOT) format. Every node is drawn together with a record of
// its attributes.
func ToGraphViz(root *construct.Node, w io.Writer) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.AttrsTmpl = template.Must(template.New("attrs").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(attrsTmpl))
	if err := graphHead.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*construct.Node]string)
		if err := nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

var graphHead = template.Must(template.New("graph").Parse(graphHeadTmpl))

type node struct {
	N    *construct.Node
	Name string
}

type attribute struct {
	Key, Value string
}

type attrs struct {
	Name  string
	Attrs []attribute
}

type edge struct {
	N1, N2 node
}

func nodes(n *construct.Node, w io.Writer, dict map[*construct.Node]string, gparams *graphParamsType) error {
	if err := constructNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, dict[n]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func constructNode(n *construct.Node, w io.Writer, dict map[*construct.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	keys := n.AttrKeys()
	if len(keys) == 0 {
		return nil
	}
	a := attrs{Name: name}
	for _, k := range keys {
		a.Attrs = append(a.Attrs, attribute{k, n.Attr(k)})
	}
	return gparams.AttrsTmpl.Execute(w, a)
}

// shortText shortens and quotes text for use in HTML-like GraphViz labels.
func shortText(s string) string {
	if r := []rune(s); len(r) > 20 {
		s = string(r[:20]) + "…"
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return template.HTMLEscapeString(s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ if .N.Kind.IsTerminal }}
{{ .Name }}	[ label={{ printf "%q" .N.Name }} shape=box style=filled fillcolor=grey95 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Name }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const attrsTmpl = `{{ .Name }}_attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Attrs }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ shortstring .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_attrs [dir=none weight=1 style="dashed"] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
