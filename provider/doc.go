/*
Package provider defines how the style cache queries the host's document.

The style cache never sees a document tree. Every structural or attribute
question a style engine needs answered during selector matching is routed
to a Provider, which knows nodes only by opaque handles (see package nodeid).

There are three ways to come up with a provider:

▪︎ implement interface Provider directly,

▪︎ install a table of 33 raw handler functions with FromFuncs, which checks
the table's arity and signatures,

▪︎ implement the much smaller interface Client and wrap it with FromClient.
Client asks for a node's tag name, attributes, siblings, ancestors and
emptiness. All the selector queries are derived from these.

Package provider also contains the parser for class lists as returned by
Provider.NodeClasses.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package provider

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecache.provider'.
func tracer() tracing.Trace {
	return tracing.Select("stylecache.provider")
}
