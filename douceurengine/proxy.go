package douceurengine

import (
	"strings"

	"github.com/npillmayer/stylecache/nodeid"
	"github.com/npillmayer/stylecache/provider"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Limits for building proxy nodes from a provider.
const (
	maxProxyDepth    = 512
	maxProxySiblings = 4096
)

// proxy builds a stand-in html.Node for a provider's node, to let cascadia
// match selectors against it. The proxy is linked to proxies of its
// ancestors and of all their preceding siblings.
func proxy(nodes provider.Provider, id nodeid.ID) *html.Node {
	target := element(nodes, id)
	if !nodes.IsEmpty(id) {
		target.AppendChild(&html.Node{Type: html.TextNode, Data: "…"})
	}
	cur, curID := target, id
	for depth := 0; ; depth++ {
		parentID := nodes.Parent(curID)
		var parent *html.Node
		if parentID.IsNone() || depth >= maxProxyDepth {
			parent = &html.Node{Type: html.DocumentNode}
		} else {
			parent = element(nodes, parentID)
		}
		for _, sib := range precedingSiblings(nodes, curID) {
			parent.AppendChild(element(nodes, sib))
		}
		parent.AppendChild(cur)
		if cur == target {
			appendFollowing(nodes, parent, target, curID)
		}
		if parent.Type == html.DocumentNode {
			return target
		}
		cur, curID = parent, parentID
	}
}

func element(nodes provider.Provider, id nodeid.ID) *html.Node {
	name := strings.ToLower(nodes.NodeName(id))
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	if v := nodes.NodeID(id); v != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: v})
	}
	if classes := provider.ParseClassList(nodes.NodeClasses(id)); len(classes) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	if lister, ok := nodes.(provider.AttributeLister); ok {
		for _, a := range lister.NodeAttributes(id) {
			key := strings.ToLower(a.Name)
			if key == "" || key == "id" || key == "class" {
				continue // taken from the provider's answers above
			}
			n.Attr = append(n.Attr, html.Attribute{Key: key, Val: a.Value})
		}
	}
	return n
}

// precedingSiblings returns the preceding siblings of a node in document order.
func precedingSiblings(nodes provider.Provider, id nodeid.ID) []nodeid.ID {
	var sibs []nodeid.ID
	seen := map[nodeid.ID]struct{}{id: {}}
	for s := nodes.Sibling(id); !s.IsNone() && len(sibs) < maxProxySiblings; s = nodes.Sibling(s) {
		if _, loops := seen[s]; loops {
			tracer().Errorf("sibling chain of %q loops", id)
			break
		}
		seen[s] = struct{}{}
		sibs = append(sibs, s)
	}
	for i, j := 0, len(sibs)-1; i < j; i, j = i+1, j-1 {
		sibs[i], sibs[j] = sibs[j], sibs[i]
	}
	return sibs
}

// appendFollowing appends placeholders for the siblings following the
// target. Placeholders of the target's type come first; the order does not
// matter for counting.
func appendFollowing(nodes provider.Provider, parent, target *html.Node, id nodeid.ID) {
	all := clamp(nodes.CountSiblings(id, false, true))
	same := clamp(nodes.CountSiblings(id, true, true))
	if same > all {
		same = all
	}
	for i := 0; i < all; i++ {
		ph := &html.Node{Type: html.ElementNode}
		if i < same {
			ph.Data, ph.DataAtom = target.Data, target.DataAtom
		}
		parent.AppendChild(ph)
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxProxySiblings {
		return maxProxySiblings
	}
	return n
}
