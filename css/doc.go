/*
Package css provides value-level helpers for CSS styling: lengths,
font-size values and the textual resolution of stylesheet URLs.

CSS properties are plentyful and some of them are complicated. This package
shields clients from the textual nature of property values where values
take part in style composition, i.e. where a child's value is computed from
its parent's. The most prominent example is 'font-size', which is computed
from a keyword, a relative step or a (possibly relative) length.

Status

The set of units is the one the style engines in this module handle. Viewport
and content-relative units are not supported.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecache.css'.
func tracer() tracing.Trace {
	return tracing.Select("stylecache.css")
}
