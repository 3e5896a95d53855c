/*
Package inline typesets the inline text of constructs: conditions, loop
bounds and statement texts.

Inline text mixes two kinds of material. Text between a pair of '$'
delimiters is math notation; it is passed through verbatim, delimiters
included, to be picked up by a math typesetting library in the browser.
Everything outside of math regions is treated as a call-like token, i.e.
the name of an algorithm or procedure, and is wrapped in a span carrying a
distinguishing class.

Typesetting is split into two passes: Scan classifies the input into a
sequence of segments, Render maps segments to markup.

Delimiters toggle strictly alternating. An odd number of delimiters leaves
the last math region open at the end of the input. This is not an error;
the open region is rendered without a closing delimiter. Unterminated
reports inputs like this, for validation passes to flag them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algotype.inline'.
func tracer() tracing.Trace {
	return tracing.Select("algotype.inline")
}
