/*
Package style holds the property model shared by style engines: raw property
values, property maps, and the CSS knowledge of which properties inherit,
what their initial values are and how shorthand properties expand.

Status

The set of known properties covers what typesetting and simple box layout
need. Unknown properties are carried along as-is and never inherit.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecache.style'
func tracer() tracing.Trace {
	return tracing.Select("stylecache.style")
}
