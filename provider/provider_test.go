package provider

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecache/nodeid"
	"github.com/stretchr/testify/assert"
)

func TestFromFuncsArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache.provider")
	defer teardown()
	//
	_, err := FromFuncs(make([]interface{}, 32))
	if !errors.Is(err, ErrArity) {
		t.Errorf("expected 32 handlers to be rejected with an arity error, is %v", err)
	}
	_, err = FromFuncs(make([]interface{}, 34))
	assert.ErrorIs(t, err, ErrArity)
	h, err := FromFuncs(make([]interface{}, HandlerCount))
	assert.NoError(t, err)
	assert.Equal(t, DefaultUAFontSize, h.UAFontSize())
	assert.True(t, h.Parent(nodeid.Intern("x")).IsNone())
}

func TestFromFuncsSignature(t *testing.T) {
	fns := make([]interface{}, HandlerCount)
	fns[0] = func(node string) string { return "div" }
	fns[7] = func(node string) string {
		if node == "child" {
			return "parent"
		}
		return ""
	}
	fns[20] = func(node string, sameName, after bool) int { return 3 }
	fns[32] = func() float64 { return 12 }
	h, err := FromFuncs(fns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child := nodeid.Intern("child")
	assert.Equal(t, "div", h.NodeName(child))
	assert.Equal(t, nodeid.Intern("parent"), h.Parent(child))
	assert.True(t, h.Parent(nodeid.Intern("parent")).IsNone())
	assert.Equal(t, 3, h.CountSiblings(child, false, true))
	assert.Equal(t, 12.0, h.UAFontSize())
	assert.False(t, h.IsHover(child))
	//
	fns[9] = func(node string) bool { return true } // has_name takes a name
	_, err = FromFuncs(fns)
	assert.ErrorIs(t, err, ErrHandlerType)
}

// --- Client adapter --------------------------------------------------------

type testNode struct {
	tag   string
	attrs []Attribute
	kids  []string
	empty bool
}

type testDoc struct {
	nodes  map[string]testNode
	parent map[string]string
}

func newTestDoc() *testDoc {
	d := &testDoc{nodes: map[string]testNode{}, parent: map[string]string{}}
	d.add("", "html", "html", nil)
	d.add("html", "body", "body", nil)
	d.add("body", "h1", "h1", []Attribute{{"id", "Title"}, {"class", "big  red"}})
	d.add("body", "p1", "p", []Attribute{{"lang", "en-US"}, {"data-x", "alpha beta"}})
	d.add("body", "p2", "p", nil)
	d.add("body", "a", "a", []Attribute{{"href", "x.html"}, {"style", "color: red"}})
	return d
}

func (d *testDoc) add(parent, id, tag string, attrs []Attribute) {
	d.nodes[id] = testNode{tag: tag, attrs: attrs, empty: true}
	if parent != "" {
		d.parent[id] = parent
		p := d.nodes[parent]
		p.kids = append(p.kids, id)
		p.empty = false
		d.nodes[parent] = p
	}
}

func (d *testDoc) TagName(node string) string           { return d.nodes[node].tag }
func (d *testDoc) Attributes(node string) []Attribute   { return d.nodes[node].attrs }
func (d *testDoc) IsEmpty(node string) bool             { return d.nodes[node].empty }
func (d *testDoc) Siblings(node string) []Relative {
	p, ok := d.parent[node]
	if !ok {
		return []Relative{{d.nodes[node].tag, node}}
	}
	var sibs []Relative
	for _, k := range d.nodes[p].kids {
		sibs = append(sibs, Relative{d.nodes[k].tag, k})
	}
	return sibs
}
func (d *testDoc) Ancestors(node string) []Relative {
	var anc []Relative
	for p, ok := d.parent[node]; ok; p, ok = d.parent[p] {
		anc = append(anc, Relative{d.nodes[p].tag, p})
	}
	return anc
}

func TestClientStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecache.provider")
	defer teardown()
	//
	p := FromClient(newTestDoc())
	h1, p1, p2, a := nodeid.Intern("h1"), nodeid.Intern("p1"), nodeid.Intern("p2"), nodeid.Intern("a")
	assert.Equal(t, nodeid.Intern("body"), p.Parent(h1))
	assert.True(t, p.Parent(nodeid.Intern("html")).IsNone())
	assert.True(t, p.IsRoot(nodeid.Intern("html")))
	assert.False(t, p.IsRoot(h1))
	assert.Equal(t, p1, p.Sibling(p2))
	assert.True(t, p.Sibling(h1).IsNone())
	assert.Equal(t, nodeid.Intern("html"), p.NamedAncestor(p1, "HTML"))
	assert.Equal(t, nodeid.Intern("body"), p.NamedParent(p1, "body"))
	assert.True(t, p.NamedParent(p1, "html").IsNone())
	assert.Equal(t, p1, p.NamedSibling(p2, "p"))
	assert.Equal(t, h1, p.NamedGenericSibling(p2, "h1"))
	assert.True(t, p.NamedGenericSibling(h1, "p").IsNone(), "only preceding siblings count")
	assert.Equal(t, 2, p.CountSiblings(p2, false, false))
	assert.Equal(t, 1, p.CountSiblings(p2, false, true))
	assert.Equal(t, 1, p.CountSiblings(p2, true, false))
	assert.Equal(t, 0, p.CountSiblings(p2, true, true))
	assert.True(t, p.IsEmpty(a))
	assert.False(t, p.IsEmpty(nodeid.Intern("body")))
	assert.True(t, p.IsLink(a))
	assert.False(t, p.IsLink(p1))
	assert.Equal(t, DefaultUAFontSize, p.UAFontSize())
}

func TestClientAttributes(t *testing.T) {
	p := FromClient(newTestDoc())
	h1, p1, a := nodeid.Intern("h1"), nodeid.Intern("p1"), nodeid.Intern("a")
	assert.Equal(t, "Title", p.NodeID(h1))
	assert.True(t, p.HasID(h1, "title"))
	assert.Equal(t, []string{"big", "red"}, ParseClassList(p.NodeClasses(h1)))
	assert.Equal(t, "[]", p.NodeClasses(p1))
	assert.True(t, p.HasClass(h1, "RED"))
	assert.False(t, p.HasClass(h1, "re"))
	assert.True(t, p.HasName(h1, "H1"))
	assert.True(t, p.HasAttribute(p1, "LANG"))
	assert.True(t, p.AttributeDashmatch(p1, "lang", "en"))
	assert.True(t, p.AttributeDashmatch(p1, "lang", "en-us"))
	assert.False(t, p.AttributeDashmatch(p1, "lang", "e"))
	assert.True(t, p.AttributeIncludes(p1, "data-x", "beta"))
	assert.False(t, p.AttributeIncludes(p1, "data-x", "bet"))
	assert.True(t, p.AttributeSubstring(p1, "data-x", "bet"))
	assert.True(t, p.AttributePrefix(p1, "data-x", "alp"))
	assert.True(t, p.AttributeSuffix(p1, "data-x", "ta"))
	assert.False(t, p.AttributePrefix(p1, "data-x", ""))
	assert.True(t, p.AttributeEquals(p1, "lang", "EN-us"))
	assert.Equal(t, "color: red", p.InlineStyle(a))
	assert.False(t, p.IsLang(p1, "en"), "client does not implement LangClient")
}
