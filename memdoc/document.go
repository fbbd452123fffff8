package memdoc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/stylecache/provider"
)

// Node is an element of a document.
type Node struct {
	Handle   string            `yaml:"handle"`
	Tag      string            `yaml:"tag"`
	Attrs    map[string]string `yaml:"attrs"`
	States   []string          `yaml:"states"`
	Text     string            `yaml:"text"`
	Children []*Node           `yaml:"children"`
	parent   *Node
}

// Document is a tree of nodes, addressed by handle. It implements
// provider.Client, provider.StateClient, provider.LangClient and
// provider.FontSizeClient.
type Document struct {
	FontSize float64 `yaml:"font-size"`
	Root     *Node   `yaml:"root"`
	nodes    map[string]*Node
	order    []string
}

var _ provider.Client = &Document{}
var _ provider.StateClient = &Document{}
var _ provider.LangClient = &Document{}
var _ provider.FontSizeClient = &Document{}

// New creates a document from a root node, indexing all nodes and generating
// missing handles.
func New(root *Node) (*Document, error) {
	doc := &Document{Root: root}
	return doc, doc.index()
}

func (doc *Document) index() error {
	doc.nodes = make(map[string]*Node)
	doc.order = nil
	if doc.Root == nil {
		return fmt.Errorf("memdoc: document has no root")
	}
	var walk func(n, parent *Node) error
	walk = func(n, parent *Node) error {
		if n == nil {
			return fmt.Errorf("memdoc: nil node below %q", parent.Handle)
		}
		n.parent = parent
		if n.Handle == "" {
			n.Handle = fmt.Sprintf("n%d", len(doc.order)+1)
		}
		if _, dup := doc.nodes[n.Handle]; dup {
			return fmt.Errorf("memdoc: duplicate handle %q", n.Handle)
		}
		doc.nodes[n.Handle] = n
		doc.order = append(doc.order, n.Handle)
		for _, ch := range n.Children {
			if err := walk(ch, n); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc.Root, nil); err != nil {
		return err
	}
	tracer().Debugf("indexed document with %d nodes", len(doc.order))
	return nil
}

// Handles returns the handles of all nodes in document order.
func (doc *Document) Handles() []string {
	return doc.order
}

// Node returns the node for a handle, or nil.
func (doc *Document) Node(handle string) *Node {
	return doc.nodes[handle]
}

// ByID returns the handle of the first node with a given 'id' attribute.
func (doc *Document) ByID(id string) (string, bool) {
	for _, h := range doc.order {
		if doc.nodes[h].Attrs["id"] == id {
			return h, true
		}
	}
	return "", false
}

// TagName implements provider.Client.
func (doc *Document) TagName(handle string) string {
	if n := doc.nodes[handle]; n != nil {
		return n.Tag
	}
	return ""
}

// Attributes implements provider.Client. Attributes are sorted by name.
func (doc *Document) Attributes(handle string) []provider.Attribute {
	n := doc.nodes[handle]
	if n == nil {
		return nil
	}
	attrs := make([]provider.Attribute, 0, len(n.Attrs))
	for k, v := range n.Attrs {
		attrs = append(attrs, provider.Attribute{Name: k, Value: v})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

// Siblings implements provider.Client.
func (doc *Document) Siblings(handle string) []provider.Relative {
	n := doc.nodes[handle]
	if n == nil {
		return nil
	}
	if n.parent == nil {
		return []provider.Relative{relative(n)}
	}
	sibs := make([]provider.Relative, len(n.parent.Children))
	for i, ch := range n.parent.Children {
		sibs[i] = relative(ch)
	}
	return sibs
}

// Ancestors implements provider.Client.
func (doc *Document) Ancestors(handle string) []provider.Relative {
	n := doc.nodes[handle]
	if n == nil {
		return nil
	}
	var anc []provider.Relative
	for p := n.parent; p != nil; p = p.parent {
		anc = append(anc, relative(p))
	}
	return anc
}

func relative(n *Node) provider.Relative {
	return provider.Relative{TagName: n.Tag, Identifier: n.Handle}
}

// IsEmpty implements provider.Client.
func (doc *Document) IsEmpty(handle string) bool {
	n := doc.nodes[handle]
	return n == nil || len(n.Children) == 0 && n.Text == ""
}

func (doc *Document) hasState(handle, state string) bool {
	if n := doc.nodes[handle]; n != nil {
		for _, s := range n.States {
			if strings.EqualFold(s, state) {
				return true
			}
		}
	}
	return false
}

func (doc *Document) IsVisited(handle string) bool { return doc.hasState(handle, "visited") }
func (doc *Document) IsHover(handle string) bool   { return doc.hasState(handle, "hover") }
func (doc *Document) IsActive(handle string) bool  { return doc.hasState(handle, "active") }
func (doc *Document) IsFocus(handle string) bool   { return doc.hasState(handle, "focus") }
func (doc *Document) IsEnabled(handle string) bool { return doc.hasState(handle, "enabled") }
func (doc *Document) IsChecked(handle string) bool { return doc.hasState(handle, "checked") }
func (doc *Document) IsTarget(handle string) bool  { return doc.hasState(handle, "target") }

// IsDisabled is true for nodes with state 'disabled' or a 'disabled' attribute.
func (doc *Document) IsDisabled(handle string) bool {
	if n := doc.nodes[handle]; n != nil {
		if _, ok := n.Attrs["disabled"]; ok {
			return true
		}
	}
	return doc.hasState(handle, "disabled")
}

// IsLang matches the language of a node, which is inherited from the
// nearest ancestor with a 'lang' attribute.
func (doc *Document) IsLang(handle string, lang string) bool {
	for n := doc.nodes[handle]; n != nil; n = n.parent {
		if l, ok := n.Attrs["lang"]; ok {
			l, lang = strings.ToLower(l), strings.ToLower(lang)
			return l == lang || strings.HasPrefix(l, lang+"-")
		}
	}
	return false
}

// UAFontSize returns the document's medium font size, defaulting to
// provider.DefaultUAFontSize.
func (doc *Document) UAFontSize() float64 {
	if doc.FontSize <= 0 {
		return provider.DefaultUAFontSize
	}
	return doc.FontSize
}
