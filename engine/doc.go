/*
Package engine defines the contract between the style cache and a CSS style
engine.

A style engine parses stylesheets, matches selectors against document nodes
and composes computed styles. The style cache never interprets CSS itself:
it holds engine handles (stylesheets, a selection context and computed
styles) and decides when to ask the engine for work. Handles are owned by
whoever created them and have to be handed back to the engine for
destruction.

Package engine also holds the vocabulary shared between the cache, the
cascade composer and the session: pseudo-elements, CSS language levels,
media types and the error taxonomy of the module.

License

Governed by a 3-Clause BSD license.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine
