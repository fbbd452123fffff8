package douceurengine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/stylecache/css"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/nodeid"
	"github.com/npillmayer/stylecache/provider"
	"github.com/npillmayer/stylecache/style"
)

// Engine is a style engine based on douceur and cascadia.
// It implements engine.Engine. The zero value is ready to use.
type Engine struct{}

// New creates a style engine.
func New() *Engine {
	return &Engine{}
}

var _ engine.Engine = &Engine{}

// Context is a selection context. It implements engine.SelectionContext.
type Context struct {
	sheets    []*Stylesheet
	destroyed bool
}

// Len returns the number of stylesheets appended to the context.
func (ctx *Context) Len() int {
	return len(ctx.sheets)
}

// ErrDestroyed is returned for operations on handles which have already been
// destroyed.
var ErrDestroyed = errors.New("handle has been destroyed")

// ErrForeignHandle is returned for handles not created by this engine.
var ErrForeignHandle = errors.New("handle not created by douceur engine")

// CreateStylesheet parses a stylesheet. Inline style sheets hold a list of
// declarations, as found in an HTML 'style' attribute.
func (e *Engine) CreateStylesheet(text string, level engine.Level, url string, inline bool) (engine.Stylesheet, error) {
	if level < engine.Level1 || level > engine.Level3 {
		return nil, fmt.Errorf("unsupported CSS level %s", level)
	}
	return parseStylesheet(text, level, url, inline)
}

// CreateSelectionContext creates an empty selection context.
func (e *Engine) CreateSelectionContext() (engine.SelectionContext, error) {
	return &Context{}, nil
}

// AppendStylesheet appends a stylesheet to a selection context. Stylesheets
// appended later win against earlier ones for rules of equal specificity.
func (e *Engine) AppendStylesheet(ctx engine.SelectionContext, sheet engine.Stylesheet) error {
	c, err := context(ctx)
	if err != nil {
		return err
	}
	s, err := stylesheet(sheet)
	if err != nil {
		return err
	}
	if s.inline {
		return fmt.Errorf("cannot append inline style sheet to selection context")
	}
	c.sheets = append(c.sheets, s)
	return nil
}

// SelectStyle selects the raw styles of a node. Every pseudo-element slot
// receives a style, even if no rule targets the pseudo-element.
func (e *Engine) SelectStyle(ctx engine.SelectionContext, node nodeid.ID, media engine.Media,
	inline engine.Stylesheet, nodes provider.Provider) (engine.StyleSet, error) {
	//
	var styles engine.StyleSet
	c, err := context(ctx)
	if err != nil {
		return styles, err
	}
	var in *Stylesheet
	if inline != nil {
		if in, err = stylesheet(inline); err != nil {
			return styles, err
		}
	}
	target := proxy(nodes, node)
	var cascades [engine.PseudoCount]cascade
	for i := range cascades {
		cascades[i] = cascade{}
	}
	order := 0
	for _, sheet := range c.sheets {
		if sheet.destroyed {
			continue
		}
		for _, r := range sheet.rules {
			order++
			if r.media&media == 0 || !r.sel.Match(target) {
				continue
			}
			for _, d := range r.decls {
				cascades[r.slot].apply(d, r.spec, order)
			}
		}
	}
	if in != nil {
		for _, d := range in.decls {
			order++
			cascades[engine.PseudoNone].apply(d, inlineSpecificity, order)
		}
	}
	base := css.Len(nodes.UAFontSize(), css.PT)
	for p := range cascades {
		display := style.Property("inline")
		if engine.Pseudo(p) == engine.PseudoNone {
			display = style.DisplayForElement(target.Data)
		}
		st, err := rawStyle(cascades[p].specified(), display, base)
		if err != nil {
			return engine.StyleSet{}, fmt.Errorf("node %q/%s: %w", node, engine.Pseudo(p), err)
		}
		styles[p] = st
	}
	tracer().Debugf("selected styles for node %q <%s>", node, target.Data)
	return styles, nil
}

// ComposeStyles computes a new style from a parent's and a child's style.
// Inherited properties not specified for the child, and properties
// specified as 'inherit', take the parent's value. The font size is
// computed by fontSize.
func (e *Engine) ComposeStyles(parent, child engine.ComputedStyle, fontSize engine.FontSizeFunc) (engine.ComputedStyle, error) {
	p, err := computedStyle(parent)
	if err != nil {
		return nil, err
	}
	c, err := computedStyle(child)
	if err != nil {
		return nil, err
	}
	if fontSize == nil {
		return nil, fmt.Errorf("no font size resolver")
	}
	return compose(p, c, fontSize)
}

// DestroyStylesheet releases a stylesheet.
func (e *Engine) DestroyStylesheet(sheet engine.Stylesheet) error {
	s, err := stylesheet(sheet)
	if err != nil {
		return err
	}
	s.destroyed = true
	s.rules, s.decls = nil, nil
	return nil
}

// DestroySelectionContext releases a selection context. Stylesheets appended
// to the context are not destroyed.
func (e *Engine) DestroySelectionContext(ctx engine.SelectionContext) error {
	c, err := context(ctx)
	if err != nil {
		return err
	}
	c.destroyed = true
	c.sheets = nil
	return nil
}

// DestroyStyle releases a computed style.
func (e *Engine) DestroyStyle(st engine.ComputedStyle) error {
	s, err := computedStyle(st)
	if err != nil {
		return err
	}
	s.destroyed = true
	return nil
}

func context(ctx engine.SelectionContext) (*Context, error) {
	c, ok := ctx.(*Context)
	if !ok || c == nil {
		return nil, fmt.Errorf("selection context: %w", ErrForeignHandle)
	}
	if c.destroyed {
		return nil, fmt.Errorf("selection context: %w", ErrDestroyed)
	}
	return c, nil
}

func stylesheet(sheet engine.Stylesheet) (*Stylesheet, error) {
	s, ok := sheet.(*Stylesheet)
	if !ok || s == nil {
		return nil, fmt.Errorf("stylesheet: %w", ErrForeignHandle)
	}
	if s.destroyed {
		return nil, fmt.Errorf("stylesheet %q: %w", s.url, ErrDestroyed)
	}
	return s, nil
}

func computedStyle(st engine.ComputedStyle) (*Style, error) {
	s, ok := st.(*Style)
	if !ok || s == nil {
		return nil, fmt.Errorf("computed style: %w", ErrForeignHandle)
	}
	if s.destroyed {
		return nil, fmt.Errorf("computed style: %w", ErrDestroyed)
	}
	return s, nil
}
