/*
Package algotype typesets pseudocode algorithms embedded in HTML pages.

Algorithms are written as trees of custom elements, with an
<alg-algorithm> element as root. Package algotype finds all of them in a
page, typesets each one into a sequence of numbered, indented rows and
appends the result to the parent of the algorithm element. Math inside
of algorithms is delimited by '$' and left to MathJax, which may be
injected into the page together with a stylesheet for the output.

    proc := algotype.New(algotype.MathJax(""), algotype.Stylesheet(nil))
    report, err := proc.ProcessHTML(input, output)

Typesetting proper is done by package typeset, on construct trees as
defined in package construct. Package dom converts between HTML and
construct trees.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package algotype

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algotype'.
func tracer() tracing.Trace {
	return tracing.Select("algotype")
}
