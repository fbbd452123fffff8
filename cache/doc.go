/*
Package cache implements the node style cache.

The cache maps node IDs to entries. An entry holds a host-owned payload and
one slot per pseudo-element. A slot is either absent, holds a raw style as
returned by style selection, or holds a resolved style, i.e. a style which
has been composed with the resolved styles of all the node's ancestors.
Resolved slots are final until the cache is cleared.

Styles in the cache are owned by the cache. Whenever a style leaves the
cache, it is handed to a destroy function, usually the style engine's.

The cache is not safe for concurrent use.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cache

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecache.cache'.
func tracer() tracing.Trace {
	return tracing.Select("stylecache.cache")
}
