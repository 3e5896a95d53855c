/*
Package typeset renders algorithm construct trees into line-numbered HTML.

Overview

A Typesetter walks the construct tree of one algorithm in a single
depth-first pass. Every construct emits one or more rows; a row is a
three-column table holding a line number, an indentation spacer and the
content of the row. Loops carrying a label emit an additional label row
in front of their header row, which does not consume a line number.

Numbering and indentation are tracked in a state object, which is created
for every call to Typeset and threaded through the traversal by pointer.
Line numbers start at 1 and are shared by the whole algorithm. Block
constructs increase the indentation for their children and restore the
previous level afterwards.

Inline text (conditions, loop bounds, statements) is typeset with package
inline: math regions enclosed in '$' delimiters are passed through for a
math typesetting library to pick up, other text is styled as call-like
tokens.

Errors

Structural errors abort the whole algorithm: an unknown construct kind
results in an UnknownConstructError, nesting deeper than the configured
limit in a DepthExceededError. No partial markup is returned in these
cases. Missing attributes are tolerated by default; see type Strictness.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package typeset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algotype.typeset'.
func tracer() tracing.Trace {
	return tracing.Select("algotype.typeset")
}
