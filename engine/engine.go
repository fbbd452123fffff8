package engine

import (
	"github.com/npillmayer/stylecache/css"
	"github.com/npillmayer/stylecache/nodeid"
	"github.com/npillmayer/stylecache/provider"
)

// Stylesheet is an engine handle for a parsed stylesheet.
type Stylesheet interface {
	URL() string
}

// SelectionContext is an engine handle for an ordered collection of
// stylesheets against which styles are selected.
type SelectionContext interface {
	Len() int
}

// ComputedStyle is an engine handle for a computed style.
type ComputedStyle interface {
	// String serializes the style to text.
	String() string
}

// StyleSet holds one computed style for each pseudo-element. Slots may be nil.
type StyleSet [PseudoCount]ComputedStyle

// FontSizeFunc computes an absolute font size from the parent's computed
// font size (nil for none) and a specified font size.
type FontSizeFunc func(parent *css.Length, size css.FontSize) (css.Length, error)

// Engine is the interface a style engine has to implement.
//
// Select style will return a style for every pseudo-element slot it has
// rules for, but at least for PseudoNone. Styles are returned in their raw
// form, i.e. as if the node had no parent. ComposeStyles will compute a new
// style from a parent's composed style and a child's raw style, without
// consuming either of them.
type Engine interface {
	CreateStylesheet(text string, level Level, url string, inline bool) (Stylesheet, error)
	CreateSelectionContext() (SelectionContext, error)
	AppendStylesheet(ctx SelectionContext, sheet Stylesheet) error
	SelectStyle(ctx SelectionContext, node nodeid.ID, media Media,
		inline Stylesheet, nodes provider.Provider) (StyleSet, error)
	ComposeStyles(parent, child ComputedStyle, fontSize FontSizeFunc) (ComputedStyle, error)
	DestroyStylesheet(sheet Stylesheet) error
	DestroySelectionContext(ctx SelectionContext) error
	DestroyStyle(style ComputedStyle) error
}
