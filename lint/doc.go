/*
Package lint checks construct trees for mistakes which do not stop the
typesetter, but result in odd output: unterminated math regions, break
statements outside of loops, labels naming no enclosing loop and the like.
It reports constructs the typesetter would reject, too.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'algotype.lint'.
func tracer() tracing.Trace {
	return tracing.Select("algotype.lint")
}
