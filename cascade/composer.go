package cascade

import (
	"errors"

	"github.com/npillmayer/stylecache/cache"
	"github.com/npillmayer/stylecache/css"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/nodeid"
	"github.com/npillmayer/stylecache/provider"
)

// DefaultMaxDepth is the default limit for the number of ancestors above the
// node being resolved.
const DefaultMaxDepth = 512

// ContextFunc returns the selection context to select styles against.
type ContextFunc func() (engine.SelectionContext, error)

// Composer resolves node styles. It is not safe for concurrent use.
//
// MaxDepth limits the number of ancestors above a node. A node with
// MaxDepth ancestors resolves, one with more fails with
// AncestorDepthExceeded.
type Composer struct {
	Cache    *cache.Cache
	Engine   engine.Engine
	Nodes    provider.Provider
	Context  ContextFunc
	Media    engine.Media
	MaxDepth int
}

// Resolve returns the resolved style of a node for a pseudo-element.
//
// If inline is not empty, it is parsed as an inline style sheet for the node.
// Inline style applies only to the node itself, not to its ancestors. A style
// already resolved is returned without asking the style engine, regardless
// of inline.
//
// The style returned is owned by the cache.
func (c *Composer) Resolve(id nodeid.ID, pseudo engine.Pseudo, inline string) (engine.ComputedStyle, error) {
	if id.IsNone() {
		return nil, engine.Errorf(engine.EngineSelectFailed, "resolve", "no node")
	}
	if pseudo >= engine.PseudoCount {
		return nil, engine.Errorf(engine.UnknownPseudoElement, "resolve", "pseudo-element slot %d", pseudo)
	}
	r := resolution{Composer: c, onPath: make(map[nodeid.ID]struct{})}
	return r.resolve(id, pseudo, inline, 0)
}

// resolution holds the state of a single call to Resolve.
type resolution struct {
	*Composer
	onPath map[nodeid.ID]struct{} // nodes on the current ancestor path
}

func (r *resolution) resolve(id nodeid.ID, pseudo engine.Pseudo, inline string, depth int) (engine.ComputedStyle, error) {
	if e, ok := r.Cache.Lookup(id); ok && e.Slot(pseudo).State == cache.Resolved {
		tracer().Debugf("style of %q/%s found in cache", id, pseudo)
		return e.Slot(pseudo).Style, nil
	}
	if _, loops := r.onPath[id]; loops {
		return nil, engine.Errorf(engine.AncestorCycle, "resolve", "node %q is its own ancestor", id)
	}
	if depth > r.maxDepth() { // depth counts ancestors above the first node
		return nil, engine.Errorf(engine.AncestorDepthExceeded, "resolve",
			"more than %d ancestors, at %q", r.maxDepth(), id)
	}
	r.onPath[id] = struct{}{}
	defer delete(r.onPath, id)
	//
	styles, err := r.selectStyles(id, inline)
	if err != nil {
		return nil, err
	}
	if styles[pseudo] == nil {
		r.destroyAll(styles)
		return nil, engine.Errorf(engine.EngineSelectFailed, "resolve",
			"no style for node %q/%s", id, pseudo)
	}
	e, err := r.Cache.Upsert(id, nil, &styles)
	if err != nil {
		tracer().Errorf("storing styles of %q: %v", id, err)
	}
	if e.Slot(pseudo).State == cache.Resolved {
		// resolved behind our back while selecting
		return e.Slot(pseudo).Style, nil
	}
	parent := r.Nodes.Parent(id)
	if parent.IsNone() {
		tracer().Debugf("node %q is a root, raw style is final", id)
		if err := r.Cache.MarkResolved(id, pseudo); err != nil {
			return nil, engine.Wrap(engine.EngineSelectFailed, "resolve", err)
		}
		return e.Slot(pseudo).Style, nil
	}
	parentStyle, err := r.resolve(parent, pseudo, "", depth+1)
	if err != nil {
		return nil, err
	}
	raw := e.Slot(pseudo).Style
	composed, err := r.Engine.ComposeStyles(parentStyle, raw, r.fontSizer())
	if err != nil {
		return nil, engine.Wrap(engine.EngineComposeFailed, "compose", err)
	}
	if err := r.Cache.Install(id, pseudo, composed); err != nil {
		// composed style is installed, only the raw style leaked
		tracer().Errorf("installing style of %q/%s: %v", id, pseudo, err)
	}
	tracer().Debugf("resolved style of %q/%s", id, pseudo)
	return composed, nil
}

// selectStyles asks the engine for the raw styles of a node. An inline
// style sheet is created for the call and destroyed afterwards.
func (r *resolution) selectStyles(id nodeid.ID, inline string) (engine.StyleSet, error) {
	ctx, err := r.Context()
	if err != nil {
		return engine.StyleSet{}, coded(engine.EngineCreateFailed, "selection context", err)
	}
	var sheet engine.Stylesheet
	if inline != "" {
		sheet, err = r.Engine.CreateStylesheet(inline, engine.DefaultLevel, "", true)
		if err != nil {
			return engine.StyleSet{}, engine.Wrap(engine.EngineCreateFailed, "inline style", err)
		}
	}
	styles, err := r.Engine.SelectStyle(ctx, id, r.media(), sheet, r.Nodes)
	if sheet != nil {
		if derr := r.Engine.DestroyStylesheet(sheet); derr != nil {
			tracer().Errorf("destroying inline style sheet of %q: %v", id, derr)
		}
	}
	if err != nil {
		return engine.StyleSet{}, coded(engine.EngineSelectFailed, "select", err)
	}
	return styles, nil
}

// coded wraps err with an error code, unless it already carries one.
func coded(code engine.ErrorCode, op string, err error) error {
	var e *engine.Error
	if errors.As(err, &e) {
		return err
	}
	return engine.Wrap(code, op, err)
}

func (r *resolution) destroyAll(styles engine.StyleSet) {
	for _, s := range styles {
		if s != nil {
			_ = r.Engine.DestroyStyle(s)
		}
	}
}

// fontSizer returns a font size resolver using the provider's UA font size
// as its base.
func (r *resolution) fontSizer() engine.FontSizeFunc {
	base := css.Len(r.Nodes.UAFontSize(), css.PT)
	return func(parent *css.Length, size css.FontSize) (css.Length, error) {
		return css.ResolveFontSize(base, parent, size)
	}
}

func (c *Composer) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

func (c *Composer) media() engine.Media {
	if c.Media == 0 {
		return engine.MediaScreen
	}
	return c.Media
}
