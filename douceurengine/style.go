package douceurengine

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/stylecache/css"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/style"
)

// Style is a computed style. It implements engine.ComputedStyle.
//
// A style carries the values specified for its node, i.e. the winners of the
// cascade, together with the computed values of all known properties.
// Styles are immutable.
type Style struct {
	specified style.PropertyMap
	computed  style.PropertyMap
	fontSize  css.Length
	destroyed bool
}

var _ engine.ComputedStyle = &Style{}

// Get returns the computed value of a property.
func (st *Style) Get(key string) (style.Property, bool) {
	return st.computed.Get(key)
}

// Specified returns the value specified for a property by the node's
// matching rules, if any.
func (st *Style) Specified(key string) (style.Property, bool) {
	return st.specified.Get(key)
}

// FontSize returns the absolute computed font size.
func (st *Style) FontSize() css.Length {
	return st.fontSize
}

// Properties returns the computed values of all properties.
func (st *Style) Properties() style.PropertyMap {
	return st.computed.Clone()
}

// String serializes the computed values, one "key: value" line per property.
func (st *Style) String() string {
	return st.computed.String()
}

// --- Cascade ---------------------------------------------------------------

// Inline declarations rank above every selector.
var inlineSpecificity = cascadia.Specificity{1 << 12, 0, 0}

type candidate struct {
	value     style.Property
	important bool
	spec      cascadia.Specificity
	order     int
}

// cascade collects the winning declarations for a single pseudo-element.
type cascade map[string]candidate

// apply installs a declaration if it wins against the current candidate:
// important declarations win over normal ones, then higher specificity wins,
// then later declarations.
func (c cascade) apply(d declaration, spec cascadia.Specificity, order int) {
	cur, ok := c[d.key]
	if ok {
		if cur.important && !d.important {
			return
		}
		if cur.important == d.important && spec.Less(cur.spec) {
			return
		}
	}
	c[d.key] = candidate{value: d.value, important: d.important, spec: spec, order: order}
}

func (c cascade) specified() style.PropertyMap {
	pm := make(style.PropertyMap, len(c))
	for k, cand := range c {
		pm.Set(k, cand.value)
	}
	return pm
}

// rawStyle computes a style as if the node had no parent.
func rawStyle(specified style.PropertyMap, display style.Property, base css.Length) (*Style, error) {
	computed := style.InitialProperties()
	computed.Set("display", display)
	for k, v := range specified {
		if v.IsInherit() || v.IsInitial() {
			continue // a root inherits initial values
		}
		computed.Set(k, v)
	}
	size, err := specifiedFontSize(specified)
	if err != nil {
		return nil, err
	}
	fs, err := css.ResolveFontSize(base, nil, size)
	if err != nil {
		return nil, err
	}
	computed.Set("font-size", style.Property(fs.String()))
	return &Style{specified: specified, computed: computed, fontSize: fs}, nil
}

// specifiedFontSize returns the specified font size, 'medium' if there is none.
func specifiedFontSize(specified style.PropertyMap) (css.FontSize, error) {
	p, ok := specified.Get("font-size")
	if !ok || p.IsInherit() || p.IsInitial() {
		return css.SizeKeyword(css.Medium), nil
	}
	return css.ParseFontSize(p.String())
}

// compose computes a child's style from its parent's style.
func compose(parent, child *Style, fontSize engine.FontSizeFunc) (*Style, error) {
	computed := child.computed.Clone()
	for k, pv := range parent.computed {
		sv, declared := child.specified.Get(k)
		switch {
		case declared && sv.IsInherit():
			computed[k] = pv
		case declared:
			// own value, already computed
		case style.IsCascading(k):
			computed[k] = pv
		}
	}
	fs := parent.fontSize
	if sv, declared := child.specified.Get("font-size"); declared && !sv.IsInherit() {
		size, err := specifiedFontSize(child.specified)
		if err != nil {
			return nil, err
		}
		ps := parent.fontSize
		if fs, err = fontSize(&ps, size); err != nil {
			return nil, fmt.Errorf("font-size %s: %w", sv, err)
		}
	}
	computed.Set("font-size", style.Property(fs.String()))
	return &Style{specified: child.specified, computed: computed, fontSize: fs}, nil
}
