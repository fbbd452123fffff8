package stylecache

import (
	"io"

	"github.com/npillmayer/stylecache/cache"
	"github.com/npillmayer/stylecache/cascade"
	"github.com/npillmayer/stylecache/douceurengine"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/nodeid"
	"github.com/npillmayer/stylecache/provider"
	"go.uber.org/multierr"
)

// Session is a style cache for a single host document.
//
// A session holds the stylesheets added by the host, the selection context
// built from them and the node style cache. The selection context is
// created on first use.
type Session struct {
	engine   engine.Engine
	media    engine.Media
	maxDepth int
	nodes    provider.Provider
	sheets   []engine.Stylesheet // registry, in order of addition
	ctx      engine.SelectionContext
	cache    *cache.Cache
}

// Option configures a session.
type Option func(*Session)

// WithEngine sets the style engine. The default is douceurengine.
func WithEngine(e engine.Engine) Option {
	return func(s *Session) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithMedia sets the media type styles are selected for. The default is
// screen.
func WithMedia(m engine.Media) Option {
	return func(s *Session) {
		s.media = m
	}
}

// WithMaxDepth limits the number of ancestors above a node whose style is
// requested. The default is cascade.DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(s *Session) {
		s.maxDepth = depth
	}
}

// New creates a session without a node provider.
func New(opts ...Option) *Session {
	s := &Session{
		engine:   douceurengine.New(),
		media:    engine.MediaScreen,
		maxDepth: cascade.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = cache.New(s.engine.DestroyStyle, s.releasePayload)
	return s
}

// SetProvider installs the node provider. Styles already cached are kept.
func (s *Session) SetProvider(p provider.Provider) {
	s.nodes = p
}

// RegisterHandlers installs a node provider from a table of
// provider.HandlerCount functions, see provider.FromFuncs.
// A table of the wrong length or with a function of the wrong signature is
// rejected with error code ProviderArityMismatch.
func (s *Session) RegisterHandlers(fns []interface{}) error {
	h, err := provider.FromFuncs(fns)
	if err != nil {
		return engine.Wrap(engine.ProviderArityMismatch, "register handlers", err)
	}
	s.nodes = h
	return nil
}

// AddStylesheet parses a stylesheet and appends it to the selection
// context. level is one of "1", "2", "2.1" or "3". url is the base URL for
// relative references in the stylesheet and may be empty.
func (s *Session) AddStylesheet(text, level, url string) error {
	lvl, err := engine.ParseLevel(level)
	if err != nil {
		return err
	}
	ctx, err := s.context()
	if err != nil {
		return err
	}
	sheet, err := s.engine.CreateStylesheet(text, lvl, url, false)
	if err != nil {
		return engine.Wrap(engine.EngineCreateFailed, "create stylesheet", err)
	}
	s.sheets = append(s.sheets, sheet)
	if err := s.engine.AppendStylesheet(ctx, sheet); err != nil {
		return engine.Wrap(engine.EngineCreateFailed, "append stylesheet", err)
	}
	tracer().Debugf("added stylesheet #%d (%q)", len(s.sheets), url)
	return nil
}

// GetStyle returns the serialized resolved style of a node for a
// pseudo-element ("none", "first-line", "first-letter", "before" or
// "after"). inline holds the node's inline style declarations and may be
// empty. Inline style is used only if the style has not been resolved
// before.
func (s *Session) GetStyle(id, pseudoName, inline string) (string, error) {
	st, err := s.Style(id, pseudoName, inline)
	if err != nil {
		return "", err
	}
	return st.String(), nil
}

// NodeStyle is GetStyle with the inline style taken from the node provider,
// if it implements provider.InlineStyler.
func (s *Session) NodeStyle(id, pseudoName string) (string, error) {
	var inline string
	if is, ok := s.nodes.(provider.InlineStyler); ok {
		inline = is.InlineStyle(nodeid.Intern(id))
	}
	return s.GetStyle(id, pseudoName, inline)
}

// Style returns the resolved style of a node, unserialized. The style is
// owned by the session and valid until the next reset.
func (s *Session) Style(id, pseudoName, inline string) (engine.ComputedStyle, error) {
	pseudo, err := engine.ParsePseudo(pseudoName)
	if err != nil {
		return nil, err
	}
	if s.nodes == nil {
		return nil, engine.Errorf(engine.NoProvider, "get style", "no node provider for %q", id)
	}
	composer := cascade.Composer{
		Cache:    s.cache,
		Engine:   s.engine,
		Nodes:    s.nodes,
		Context:  s.context,
		Media:    s.media,
		MaxDepth: s.maxDepth,
	}
	st, err := composer.Resolve(nodeid.Intern(id), pseudo, inline)
	if err != nil {
		tracer().Infof("style of %q/%s: %v", id, pseudo, err)
		return nil, err
	}
	return st, nil
}

// SetPayload attaches host data to a node. The node provider is told when
// the payload is released, if it implements provider.PayloadReleaser.
// A nil payload leaves the current payload alone.
func (s *Session) SetPayload(id string, payload interface{}) error {
	_, err := s.cache.Upsert(nodeid.Intern(id), payload, nil)
	return err
}

// Payload returns the host data attached to a node.
func (s *Session) Payload(id string) (interface{}, bool) {
	e, ok := s.cache.Lookup(nodeid.Intern(id))
	if !ok || e.Payload == nil {
		return nil, false
	}
	return e.Payload, true
}

// Len returns the number of nodes in the cache.
func (s *Session) Len() int {
	return s.cache.Len()
}

// Stylesheets returns the number of stylesheets added since the last reset.
func (s *Session) Stylesheets() int {
	return len(s.sheets)
}

// DumpCache writes the contents of the cache to w.
func (s *Session) DumpCache(w io.Writer) {
	s.cache.Dump(w)
}

// Reset drops all cached styles and payloads, the stylesheets and the
// selection context. Every engine handle is released before Reset returns.
// Errors are accumulated and returned; the session is empty in any case.
// Resetting an empty session is a no-op.
func (s *Session) Reset() error {
	err := s.cache.Clear()
	if s.ctx != nil {
		err = multierr.Append(err, engine.Wrap(engine.EngineDestroyFailed, "destroy selection context",
			s.engine.DestroySelectionContext(s.ctx)))
	}
	for _, sheet := range s.sheets {
		err = multierr.Append(err, engine.Wrap(engine.EngineDestroyFailed, "destroy stylesheet",
			s.engine.DestroyStylesheet(sheet)))
	}
	n := len(s.sheets)
	s.ctx, s.sheets = nil, nil
	if err != nil {
		tracer().Errorf("reset: %v", err)
		return err
	}
	tracer().Debugf("reset, released %d stylesheets", n)
	return nil
}

// Close resets the session.
func (s *Session) Close() error {
	return s.Reset()
}

// context returns the selection context, creating it if necessary.
func (s *Session) context() (engine.SelectionContext, error) {
	if s.ctx != nil {
		return s.ctx, nil
	}
	ctx, err := s.engine.CreateSelectionContext()
	if err != nil {
		return nil, engine.Wrap(engine.EngineCreateFailed, "create selection context", err)
	}
	if ctx == nil {
		return nil, engine.ErrCreateFailed
	}
	s.ctx = ctx
	return ctx, nil
}

func (s *Session) releasePayload(id nodeid.ID, payload interface{}) {
	if r, ok := s.nodes.(provider.PayloadReleaser); ok {
		r.ReleasePayload(id, payload)
	}
}
