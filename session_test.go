package stylecache

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecache/douceurengine"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/memdoc"
	"github.com/npillmayer/stylecache/nodeid"
	"github.com/npillmayer/stylecache/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionDoc = `
font-size: 12
root:
  tag: html
  handle: html
  children:
    - tag: body
      handle: body
      children:
        - tag: p
          handle: p
          attrs: { class: intro, style: "color: green" }
          text: Hello
        - tag: div
          handle: div
`

const sessionCSS = `
body { color: navy; font-size: 10pt }
p { margin-top: 1em }
p::before { content: "*" }
.intro { font-size: 150% }
`

// trackingEngine counts calls to the style engine and keeps track of
// handles not yet destroyed.
type trackingEngine struct {
	*douceurengine.Engine
	selects, composes int
	live              map[interface{}]string
}

func newTrackingEngine() *trackingEngine {
	return &trackingEngine{Engine: douceurengine.New(), live: make(map[interface{}]string)}
}

func (te *trackingEngine) CreateStylesheet(text string, level engine.Level, url string, inline bool) (engine.Stylesheet, error) {
	sheet, err := te.Engine.CreateStylesheet(text, level, url, inline)
	if err == nil {
		te.live[sheet] = "stylesheet"
	}
	return sheet, err
}

func (te *trackingEngine) CreateSelectionContext() (engine.SelectionContext, error) {
	ctx, err := te.Engine.CreateSelectionContext()
	if err == nil {
		te.live[ctx] = "context"
	}
	return ctx, err
}

func (te *trackingEngine) SelectStyle(ctx engine.SelectionContext, node nodeid.ID, media engine.Media,
	inline engine.Stylesheet, nodes provider.Provider) (engine.StyleSet, error) {
	te.selects++
	styles, err := te.Engine.SelectStyle(ctx, node, media, inline, nodes)
	for _, s := range styles {
		if s != nil {
			te.live[s] = "style"
		}
	}
	return styles, err
}

func (te *trackingEngine) ComposeStyles(parent, child engine.ComputedStyle, fs engine.FontSizeFunc) (engine.ComputedStyle, error) {
	te.composes++
	s, err := te.Engine.ComposeStyles(parent, child, fs)
	if err == nil {
		te.live[s] = "style"
	}
	return s, err
}

func (te *trackingEngine) DestroyStylesheet(sheet engine.Stylesheet) error {
	delete(te.live, sheet)
	return te.Engine.DestroyStylesheet(sheet)
}

func (te *trackingEngine) DestroySelectionContext(ctx engine.SelectionContext) error {
	delete(te.live, ctx)
	return te.Engine.DestroySelectionContext(ctx)
}

func (te *trackingEngine) DestroyStyle(s engine.ComputedStyle) error {
	delete(te.live, s)
	return te.Engine.DestroyStyle(s)
}

// releasingDoc records payload release notifications.
type releasingDoc struct {
	*memdoc.Document
	released map[string][]interface{}
}

func (d *releasingDoc) ReleasePayload(node nodeid.ID, payload interface{}) {
	d.released[node.String()] = append(d.released[node.String()], payload)
}

func newSession(t *testing.T, opts ...Option) (*Session, *releasingDoc) {
	doc, err := memdoc.FromYAML(strings.NewReader(sessionDoc))
	require.NoError(t, err)
	rdoc := &releasingDoc{Document: doc, released: make(map[string][]interface{})}
	s := New(opts...)
	s.SetProvider(provider.FromClient(rdoc))
	require.NoError(t, s.AddStylesheet(sessionCSS, "3", ""))
	return s, rdoc
}

func TestGetStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	s, _ := newSession(t)
	defer s.Close()
	style, err := s.GetStyle("p", "none", "")
	require.NoError(t, err)
	t.Logf("style of p:\n%s", style)
	assert.Contains(t, style, "color: navy\n")
	assert.Contains(t, style, "font-size: 15pt\n")
	assert.Contains(t, style, "margin-top: 1em\n")
	assert.Contains(t, style, "display: block\n")
	before, err := s.GetStyle("p", "before", "")
	require.NoError(t, err)
	assert.Contains(t, before, `content: "*"`)
	assert.Contains(t, before, "display: inline\n")
	html, err := s.GetStyle("html", "none", "")
	require.NoError(t, err)
	assert.Contains(t, html, "font-size: 12pt\n", "UA font size of the document")
	assert.Equal(t, 3, s.Len())
}

func TestMemoization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	te := newTrackingEngine()
	s, _ := newSession(t, WithEngine(te))
	defer s.Close()
	first, err := s.Style("p", "none", "")
	require.NoError(t, err)
	assert.Equal(t, 3, te.selects, "p, body and html")
	assert.Equal(t, 2, te.composes)
	second, err := s.Style("p", "none", "color: red")
	require.NoError(t, err)
	assert.Equal(t, 3, te.selects, "second call is served from cache")
	assert.Equal(t, 2, te.composes)
	if first != second {
		t.Errorf("expected identical style for second call")
	}
	_, err = s.Style("div", "none", "")
	require.NoError(t, err)
	assert.Equal(t, 4, te.selects, "ancestors are shared")
	assert.Equal(t, 3, te.composes)
}

func TestInlineStyleIsLocal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	s, _ := newSession(t)
	defer s.Close()
	div, err := s.GetStyle("div", "none", "color: red !important; margin-left: 2px")
	require.NoError(t, err)
	assert.Contains(t, div, "color: red\n")
	assert.Contains(t, div, "margin-left: 2px\n")
	body, err := s.GetStyle("body", "none", "")
	require.NoError(t, err)
	assert.Contains(t, body, "color: navy\n", "inline style of a child must not leak to its parent")
	p, err := s.NodeStyle("p", "none")
	require.NoError(t, err)
	assert.Contains(t, p, "color: green\n", "inline style from the style attribute")
}

func TestInlineDeclarationForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	cases := []struct {
		inline   string
		expected []string
	}{
		{"color: red", []string{"color: red\n"}},
		{"color: red;", []string{"color: red\n"}},
		{"color: red; margin: 1px 2px", []string{"color: red\n", "margin-left: 2px\n", "margin-top: 1px\n"}},
		{"margin-left: 3px ; color : red", []string{"color: red\n", "margin-left: 3px\n"}},
	}
	for _, c := range cases {
		s, _ := newSession(t)
		style, err := s.GetStyle("div", "none", c.inline)
		require.NoError(t, err)
		for _, line := range c.expected {
			assert.Contains(t, style, line, "inline style %q", c.inline)
		}
		body, err := s.GetStyle("body", "none", "")
		require.NoError(t, err)
		assert.Contains(t, body, "margin-left: 0\n", "inline style %q leaks to parent", c.inline)
		require.NoError(t, s.Close())
	}
}

func TestNoInvalidationOnAddStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	s, _ := newSession(t)
	defer s.Close()
	style, err := s.GetStyle("div", "none", "")
	require.NoError(t, err)
	assert.Contains(t, style, "color: navy\n")
	require.NoError(t, s.AddStylesheet("div { color: red }", "2.1", ""))
	style, err = s.GetStyle("div", "none", "")
	require.NoError(t, err)
	assert.Contains(t, style, "color: navy\n", "resolved styles are stable")
	require.NoError(t, s.Reset())
	require.NoError(t, s.AddStylesheet(sessionCSS, "3", ""))
	require.NoError(t, s.AddStylesheet("div { color: red }", "2.1", ""))
	style, err = s.GetStyle("div", "none", "")
	require.NoError(t, err)
	assert.Contains(t, style, "color: red\n")
}

func TestReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	te := newTrackingEngine()
	s, doc := newSession(t, WithEngine(te))
	require.NoError(t, s.SetPayload("p", 42))
	require.NoError(t, s.SetPayload("p", nil))
	payload, ok := s.Payload("p")
	require.True(t, ok)
	assert.Equal(t, 42, payload)
	for _, id := range []string{"p", "div"} {
		for _, pseudo := range []string{"none", "before", "first-line"} {
			_, err := s.GetStyle(id, pseudo, "margin: 0")
			require.NoError(t, err)
		}
	}
	payload, _ = s.Payload("p")
	assert.Equal(t, 42, payload, "resolving keeps the payload")
	assert.NotEmpty(t, te.live)
	require.NoError(t, s.Reset())
	assert.Empty(t, te.live, "every engine handle is released")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Stylesheets())
	assert.Equal(t, []interface{}{42}, doc.released["p"])
	assert.Len(t, doc.released, 1)
	require.NoError(t, s.Reset(), "reset is idempotent")
	assert.Equal(t, 0, s.Len())
	assert.Len(t, doc.released["p"], 1, "payload is released once")
	_, ok = s.Payload("p")
	assert.False(t, ok)
	// the session is usable after a reset
	require.NoError(t, s.AddStylesheet("p { color: olive }", "1", ""))
	style, err := s.GetStyle("p", "none", "")
	require.NoError(t, err)
	assert.Contains(t, style, "color: olive\n")
}

func TestSessionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	s := New()
	_, err := s.GetStyle("p", "none", "")
	assert.True(t, errors.Is(err, engine.ErrNoProvider), "got %v", err)
	err = s.AddStylesheet("p {}", "4", "")
	assert.True(t, errors.Is(err, engine.ErrUnknownLanguageLevel), "got %v", err)
	assert.Equal(t, 0, s.Stylesheets())
	err = s.RegisterHandlers(make([]interface{}, provider.HandlerCount-1))
	assert.Equal(t, engine.ProviderArityMismatch, engine.CodeOf(err))
	fns := make([]interface{}, provider.HandlerCount)
	fns[0] = func(string) string { return "span" }
	require.NoError(t, s.RegisterHandlers(fns))
	_, err = s.GetStyle("x", "marker", "")
	assert.True(t, errors.Is(err, engine.ErrUnknownPseudoElement), "got %v", err)
	style, err := s.GetStyle("x", "none", "")
	require.NoError(t, err)
	assert.Contains(t, style, "display: inline\n")
	var buf bytes.Buffer
	s.DumpCache(&buf)
	assert.Contains(t, buf.String(), "x")
	require.NoError(t, s.Close())
}

func TestBrokenAncestorChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache")
	defer teardown()
	//
	parents := map[string]string{"a": "b", "b": "c", "c": "a", "d": "e", "e": "f", "f": "g"}
	fns := make([]interface{}, provider.HandlerCount)
	fns[0] = func(string) string { return "div" }
	fns[7] = func(n string) string { return parents[n] }
	s := New(WithMaxDepth(2))
	require.NoError(t, s.RegisterHandlers(fns))
	_, err := s.GetStyle("a", "none", "")
	assert.True(t, errors.Is(err, engine.ErrAncestorCycle), "got %v", err)
	_, err = s.GetStyle("d", "none", "") // three ancestors
	assert.True(t, errors.Is(err, engine.ErrAncestorDepthExceeded), "got %v", err)
	_, err = s.GetStyle("e", "none", "") // two ancestors
	assert.NoError(t, err)
	assert.NoError(t, s.Reset())
}
