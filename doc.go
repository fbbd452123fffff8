/*
Package stylecache computes CSS styles for the nodes of a host document and
caches them.

The host owns the document. It hands the style cache a node provider
(package provider), answering questions about nodes identified by opaque
string handles, and adds stylesheets as text. Asking for the style of a node
selects the raw styles of the node with a style engine (package engine),
resolves the styles of the node's ancestors and composes the node's style
with the style of its parent. Resolved styles are cached per node and
pseudo-element until the session is reset.

    session := stylecache.New()
    session.SetProvider(provider.FromClient(doc))
    err := session.AddStylesheet("p { color: red }", "3", "http://example.com/css")
    ...
    s, err := session.GetStyle("p-1", "none", "margin: 0")

A style resolved once is stable. Adding a stylesheet after styles have been
resolved does not invalidate them, only Reset does.

A Session is not safe for concurrent use.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylecache

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecache'.
func tracer() tracing.Trace {
	return tracing.Select("stylecache")
}
