/*
Package memdoc implements an in-memory document, usable as a node provider
for the style cache.

Documents are either loaded from YAML fixtures or parsed from HTML. A YAML
fixture describes a tree of elements:

    font-size: 12
    root:
      tag: html
      children:
        - tag: body
          handle: body
          attrs: { class: "main wide", lang: en }
          states: [ hover ]
          text: Hello

Every element has a handle by which the style cache refers to it. Handles
not given explicitly are generated in document order.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memdoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecache.memdoc'.
func tracer() tracing.Trace {
	return tracing.Select("stylecache.memdoc")
}
