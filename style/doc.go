/*
Package style provides the stylesheet for typeset algorithms.

Typeset output carries class names for every logical role (see
typeset.Markers), but no presentational attributes besides the width of
the indentation spacer. Package style creates a default stylesheet for
these classes and merges it with stylesheets provided by clients or found
in an HTML page.

CSS handling is done with https://github.com/aymerick/douceur.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'algotype.style'.
func tracer() tracing.Trace {
	return tracing.Select("algotype.style")
}
