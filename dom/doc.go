/*
Package dom connects HTML documents to construct trees.

Algorithms are written as custom elements inside of HTML pages:

    <alg-algorithm name="Search" parameters="A, x">
      <alg-foreach condition="a \In A">
        <alg-if condition="a = x">
          <alg-return>$a$</alg-return>
        </alg-if>
      </alg-foreach>
      <alg-return>$\Nil$</alg-return>
    </alg-algorithm>

Package dom finds these elements in a parse tree of golang.org/x/net/html,
converts them to construct trees and attaches typeset output to the page.

Element Mapping

Every element child of an algorithm element becomes a construct node, with
its kind derived from the element name (see construct.KindForTag). Text
between elements is ignored, with the exception of terminal constructs:
steps, returns and the like take their inner HTML as content, break and
continue take their inner text as the label they refer to. Elements with
names not denoting a construct are kept as nodes of kind Unknown, leaving
it to the typesetter to reject them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'algotype.dom'
func tracer() tracing.Trace {
	return tracing.Select("algotype.dom")
}
