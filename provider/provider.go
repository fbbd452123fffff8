package provider

import "github.com/npillmayer/stylecache/nodeid"

// Provider answers structural and attribute queries about document nodes.
//
// Node-valued answers return nodeid.None for "no such node". String-valued
// answers return "" for "not present". Providers should not fail; malformed
// answers are treated as best effort by the callers.
//
// Name comparisons are expected to be case-insensitive.
type Provider interface {
	NodeName(node nodeid.ID) string
	// NodeClasses returns the encoded class list of a node, see ParseClassList.
	NodeClasses(node nodeid.ID) string
	NodeID(node nodeid.ID) string
	NamedAncestor(node nodeid.ID, name string) nodeid.ID
	NamedParent(node nodeid.ID, name string) nodeid.ID
	NamedSibling(node nodeid.ID, name string) nodeid.ID
	NamedGenericSibling(node nodeid.ID, name string) nodeid.ID
	Parent(node nodeid.ID) nodeid.ID
	// Sibling returns the immediately preceding sibling element.
	Sibling(node nodeid.ID) nodeid.ID
	HasName(node nodeid.ID, name string) bool
	HasClass(node nodeid.ID, name string) bool
	HasID(node nodeid.ID, name string) bool
	HasAttribute(node nodeid.ID, name string) bool
	AttributeEquals(node nodeid.ID, name, value string) bool
	AttributeDashmatch(node nodeid.ID, name, value string) bool
	AttributeIncludes(node nodeid.ID, name, value string) bool
	AttributePrefix(node nodeid.ID, name, value string) bool
	AttributeSuffix(node nodeid.ID, name, value string) bool
	AttributeSubstring(node nodeid.ID, name, value string) bool
	IsRoot(node nodeid.ID) bool
	// CountSiblings counts the siblings before (or after) node, optionally
	// only those with the same element name.
	CountSiblings(node nodeid.ID, sameName, after bool) int
	IsEmpty(node nodeid.ID) bool
	IsLink(node nodeid.ID) bool
	IsVisited(node nodeid.ID) bool
	IsHover(node nodeid.ID) bool
	IsActive(node nodeid.ID) bool
	IsFocus(node nodeid.ID) bool
	IsEnabled(node nodeid.ID) bool
	IsDisabled(node nodeid.ID) bool
	IsChecked(node nodeid.ID) bool
	IsTarget(node nodeid.ID) bool
	IsLang(node nodeid.ID, lang string) bool
	// UAFontSize is the user agent's medium font size in points.
	UAFontSize() float64
}

// HandlerCount is the number of operations of a Provider, and therefore the
// required length of a raw handler table.
const HandlerCount = 33

// PayloadReleaser may be implemented by a provider which wants to be told
// when the style cache drops the payload it holds for a node.
type PayloadReleaser interface {
	ReleasePayload(node nodeid.ID, payload interface{})
}

// InlineStyler may be implemented by a provider which knows a node's inline
// style declarations, usually from an HTML 'style' attribute.
type InlineStyler interface {
	InlineStyle(node nodeid.ID) string
}

// AttributeLister may be implemented by a provider which can enumerate the
// attributes of a node. Style engines matching selectors against copies of
// nodes need it for attribute selectors.
type AttributeLister interface {
	NodeAttributes(node nodeid.ID) []Attribute
}

// DefaultUAFontSize is the medium font size in points used if a provider
// has no opinion.
const DefaultUAFontSize = 16.0
