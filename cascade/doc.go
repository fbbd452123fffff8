/*
Package cascade resolves the computed style of a node by composing it with
the resolved styles of its ancestors.

Resolution is memoized in a node style cache (package cache) per node and
pseudo-element. Resolving a node resolves its parent first, which in turn
resolves its parent, and so on up to the root. Ancestors resolved once are
shared by all their descendants.

A Composer does not trust the node provider's idea of a tree: ancestor
chains which loop or exceed a maximum depth are reported as errors.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecache.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("stylecache.cascade")
}
