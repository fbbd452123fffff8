/*
Package nodeid provides interned identifiers for document nodes.

Document nodes are known to the style cache only by an opaque string handle,
handed out by a node provider. Handles are interned: two IDs created from
equal strings compare equal with ==, and may be used as map keys. An ID never
owns any node structure.

The empty string denotes "no node". It interns to the zero ID, which callers
check with IsNone.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nodeid
