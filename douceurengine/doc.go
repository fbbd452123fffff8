/*
Package douceurengine is the default style engine for the style cache.

Stylesheets are parsed with github.com/aymerick/douceur. Selectors are
compiled and matched with github.com/andybalholm/cascadia, which also
provides specificity and pseudo-elements. As cascadia matches against
golang.org/x/net/html nodes, the engine builds a proxy of the node in
question from the answers of a node provider: the node itself, its chain of
ancestors, and the elements preceding each of them. Following siblings are
represented by placeholders, which are enough for structural pseudo-classes
counting from the end.

Relative references in url() values and @import rules are resolved against
the stylesheet's URL.

Status

Proxy nodes carry tag name, id and classes only. Attribute selectors other
than those for id and class never match, and neither do dynamic
pseudo-classes. @media rules are evaluated by media type; media features are
ignored.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package douceurengine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecache.engine'.
func tracer() tracing.Trace {
	return tracing.Select("stylecache.engine")
}
