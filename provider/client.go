package provider

import (
	"strings"

	"github.com/npillmayer/stylecache/nodeid"
)

// Attribute is a name/value pair of a document node.
type Attribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Relative is a reference to a node related to another one.
type Relative struct {
	TagName    string
	Identifier string
}

// Client is a minimal view of a host document.
//
// Siblings returns all the children of the node's parent in document order,
// including the node itself. Ancestors returns the parent at index 0, the
// parent's parent at index 1, and so on up to the root. It is empty for the
// root node.
type Client interface {
	TagName(node string) string
	Attributes(node string) []Attribute
	Siblings(node string) []Relative
	Ancestors(node string) []Relative
	IsEmpty(node string) bool
}

// StateClient may be implemented by a Client which knows about dynamic
// pseudo-classes. Without it they never match.
type StateClient interface {
	IsVisited(node string) bool
	IsHover(node string) bool
	IsActive(node string) bool
	IsFocus(node string) bool
	IsEnabled(node string) bool
	IsDisabled(node string) bool
	IsChecked(node string) bool
	IsTarget(node string) bool
}

// LangClient may be implemented by a Client which supports the :lang()
// pseudo-class.
type LangClient interface {
	IsLang(node string, lang string) bool
}

// FontSizeClient may be implemented by a Client to set the user agent's
// medium font size, in points.
type FontSizeClient interface {
	UAFontSize() float64
}

// ClientProvider derives a full Provider from a Client.
type ClientProvider struct {
	client Client
}

// FromClient wraps a client document.
func FromClient(c Client) *ClientProvider {
	return &ClientProvider{client: c}
}

var _ Provider = &ClientProvider{}
var _ InlineStyler = &ClientProvider{}
var _ AttributeLister = &ClientProvider{}

func (cp *ClientProvider) attr(node nodeid.ID, name string) (string, bool) {
	for _, a := range cp.client.Attributes(node.String()) {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

func (cp *ClientProvider) classes(node nodeid.ID) []string {
	if v, ok := cp.attr(node, "class"); ok {
		return strings.Fields(v)
	}
	return nil
}

// siblings returns the node's siblings and the node's position among them.
// If the node is missing from its siblings, the position is -1.
func (cp *ClientProvider) siblings(node nodeid.ID) ([]Relative, int) {
	sibs := cp.client.Siblings(node.String())
	for i, s := range sibs {
		if s.Identifier == node.String() {
			return sibs, i
		}
	}
	tracer().Errorf("siblings of node %q do not contain the node itself", node)
	return sibs, -1
}

// NodeName returns the tag name of node.
func (cp *ClientProvider) NodeName(node nodeid.ID) string {
	return cp.client.TagName(node.String())
}

// NodeClasses returns the encoded class list of node's 'class' attribute.
func (cp *ClientProvider) NodeClasses(node nodeid.ID) string {
	return EncodeClassList(cp.classes(node))
}

// NodeID returns node's 'id' attribute.
func (cp *ClientProvider) NodeID(node nodeid.ID) string {
	id, _ := cp.attr(node, "id")
	return id
}

// NodeAttributes returns all attributes of node, as reported by the client.
func (cp *ClientProvider) NodeAttributes(node nodeid.ID) []Attribute {
	return cp.client.Attributes(node.String())
}

// InlineStyle returns node's 'style' attribute.
func (cp *ClientProvider) InlineStyle(node nodeid.ID) string {
	s, _ := cp.attr(node, "style")
	return s
}

func (cp *ClientProvider) NamedAncestor(node nodeid.ID, name string) nodeid.ID {
	for _, a := range cp.client.Ancestors(node.String()) {
		if strings.EqualFold(a.TagName, name) {
			return nodeid.Intern(a.Identifier)
		}
	}
	return nodeid.None
}

func (cp *ClientProvider) NamedParent(node nodeid.ID, name string) nodeid.ID {
	anc := cp.client.Ancestors(node.String())
	if len(anc) > 0 && strings.EqualFold(anc[0].TagName, name) {
		return nodeid.Intern(anc[0].Identifier)
	}
	return nodeid.None
}

func (cp *ClientProvider) NamedSibling(node nodeid.ID, name string) nodeid.ID {
	sibs, at := cp.siblings(node)
	if at > 0 && strings.EqualFold(sibs[at-1].TagName, name) {
		return nodeid.Intern(sibs[at-1].Identifier)
	}
	return nodeid.None
}

// NamedGenericSibling returns the nearest preceding sibling with a given name.
func (cp *ClientProvider) NamedGenericSibling(node nodeid.ID, name string) nodeid.ID {
	sibs, at := cp.siblings(node)
	for i := at - 1; i >= 0; i-- {
		if strings.EqualFold(sibs[i].TagName, name) {
			return nodeid.Intern(sibs[i].Identifier)
		}
	}
	return nodeid.None
}

func (cp *ClientProvider) Parent(node nodeid.ID) nodeid.ID {
	if anc := cp.client.Ancestors(node.String()); len(anc) > 0 {
		return nodeid.Intern(anc[0].Identifier)
	}
	return nodeid.None
}

func (cp *ClientProvider) Sibling(node nodeid.ID) nodeid.ID {
	if sibs, at := cp.siblings(node); at > 0 {
		return nodeid.Intern(sibs[at-1].Identifier)
	}
	return nodeid.None
}

func (cp *ClientProvider) HasName(node nodeid.ID, name string) bool {
	return strings.EqualFold(cp.client.TagName(node.String()), name)
}

func (cp *ClientProvider) HasClass(node nodeid.ID, name string) bool {
	for _, c := range cp.classes(node) {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

func (cp *ClientProvider) HasID(node nodeid.ID, name string) bool {
	id, ok := cp.attr(node, "id")
	return ok && strings.EqualFold(id, name)
}

func (cp *ClientProvider) HasAttribute(node nodeid.ID, name string) bool {
	_, ok := cp.attr(node, name)
	return ok
}

// matchAttr applies a value predicate to a node's attribute, comparing
// case-insensitively.
func (cp *ClientProvider) matchAttr(node nodeid.ID, name, value string, match func(v, value string) bool) bool {
	v, ok := cp.attr(node, name)
	return ok && match(strings.ToLower(v), strings.ToLower(value))
}

func (cp *ClientProvider) AttributeEquals(node nodeid.ID, name, value string) bool {
	return cp.matchAttr(node, name, value, func(v, value string) bool {
		return v == value
	})
}

// AttributeDashmatch matches [name|=value].
func (cp *ClientProvider) AttributeDashmatch(node nodeid.ID, name, value string) bool {
	return cp.matchAttr(node, name, value, func(v, value string) bool {
		return v == value || strings.HasPrefix(v, value+"-")
	})
}

// AttributeIncludes matches [name~=value], i.e. value is one of the
// whitespace separated words of the attribute.
func (cp *ClientProvider) AttributeIncludes(node nodeid.ID, name, value string) bool {
	return cp.matchAttr(node, name, value, func(v, value string) bool {
		for _, w := range strings.Fields(v) {
			if w == value {
				return true
			}
		}
		return false
	})
}

func (cp *ClientProvider) AttributePrefix(node nodeid.ID, name, value string) bool {
	return cp.matchAttr(node, name, value, func(v, value string) bool {
		return value != "" && strings.HasPrefix(v, value)
	})
}

func (cp *ClientProvider) AttributeSuffix(node nodeid.ID, name, value string) bool {
	return cp.matchAttr(node, name, value, func(v, value string) bool {
		return value != "" && strings.HasSuffix(v, value)
	})
}

func (cp *ClientProvider) AttributeSubstring(node nodeid.ID, name, value string) bool {
	return cp.matchAttr(node, name, value, func(v, value string) bool {
		return value != "" && strings.Contains(v, value)
	})
}

func (cp *ClientProvider) IsRoot(node nodeid.ID) bool {
	return len(cp.client.Ancestors(node.String())) == 0
}

func (cp *ClientProvider) CountSiblings(node nodeid.ID, sameName, after bool) int {
	sibs, at := cp.siblings(node)
	if at < 0 {
		return 0
	}
	from, to := 0, at
	if after {
		from, to = at+1, len(sibs)
	}
	if !sameName {
		return to - from
	}
	count := 0
	for _, s := range sibs[from:to] {
		if strings.EqualFold(s.TagName, sibs[at].TagName) {
			count++
		}
	}
	return count
}

func (cp *ClientProvider) IsEmpty(node nodeid.ID) bool {
	return cp.client.IsEmpty(node.String())
}

// IsLink is true for <a> elements with a non-empty 'href' attribute.
func (cp *ClientProvider) IsLink(node nodeid.ID) bool {
	if !cp.HasName(node, "a") {
		return false
	}
	href, _ := cp.attr(node, "href")
	return href != ""
}

func (cp *ClientProvider) state(node nodeid.ID, f func(StateClient, string) bool) bool {
	if sc, ok := cp.client.(StateClient); ok {
		return f(sc, node.String())
	}
	return false
}

func (cp *ClientProvider) IsVisited(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsVisited)
}

func (cp *ClientProvider) IsHover(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsHover)
}

func (cp *ClientProvider) IsActive(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsActive)
}

func (cp *ClientProvider) IsFocus(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsFocus)
}

func (cp *ClientProvider) IsEnabled(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsEnabled)
}

func (cp *ClientProvider) IsDisabled(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsDisabled)
}

func (cp *ClientProvider) IsChecked(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsChecked)
}

func (cp *ClientProvider) IsTarget(node nodeid.ID) bool {
	return cp.state(node, StateClient.IsTarget)
}

func (cp *ClientProvider) IsLang(node nodeid.ID, lang string) bool {
	if lc, ok := cp.client.(LangClient); ok {
		return lc.IsLang(node.String(), lang)
	}
	return false
}

// UAFontSize asks the client, falling back to DefaultUAFontSize.
func (cp *ClientProvider) UAFontSize() float64 {
	if fc, ok := cp.client.(FontSizeClient); ok {
		return fc.UAFontSize()
	}
	return DefaultUAFontSize
}

// ReleasePayload forwards payload release notifications to the client, if
// it wants them.
func (cp *ClientProvider) ReleasePayload(node nodeid.ID, payload interface{}) {
	if r, ok := cp.client.(PayloadReleaser); ok {
		r.ReleasePayload(node, payload)
	}
}
