package memdoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"
)

// FromYAML loads a document from a YAML fixture.
func FromYAML(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("memdoc: decoding YAML: %w", err)
	}
	if err := doc.index(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Sources lists the style information found in an HTML document.
type Sources struct {
	Styles []string // content of <style> elements, in document order
	Links  []string // targets of <link rel="stylesheet">, in document order
}

// FromHTML parses an HTML document. Every element becomes a node; text is
// kept as a node's text. Style elements and stylesheet links are reported
// as sources.
func FromHTML(r io.Reader) (*Document, *Sources, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("memdoc: parsing HTML: %w", err)
	}
	src := &Sources{}
	var top *Node
	var convert func(h *html.Node, parent *Node)
	convert = func(h *html.Node, parent *Node) {
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			switch ch.Type {
			case html.ElementNode:
				n := &Node{Tag: ch.Data, Attrs: make(map[string]string, len(ch.Attr))}
				for _, a := range ch.Attr {
					n.Attrs[strings.ToLower(a.Key)] = a.Val
				}
				if parent == nil {
					top = n
				} else {
					parent.Children = append(parent.Children, n)
				}
				collectSource(ch, src)
				convert(ch, n)
			case html.TextNode:
				if parent != nil && strings.TrimSpace(ch.Data) != "" {
					parent.Text += ch.Data
				}
			default:
				convert(ch, parent)
			}
		}
	}
	convert(root, nil)
	doc, err := New(top)
	if err != nil {
		return nil, nil, err
	}
	return doc, src, nil
}

func collectSource(h *html.Node, src *Sources) {
	switch h.DataAtom {
	case atom.Style:
		if h.FirstChild != nil && h.FirstChild.Type == html.TextNode {
			src.Styles = append(src.Styles, h.FirstChild.Data)
		}
	case atom.Link:
		var rel, href string
		for _, a := range h.Attr {
			switch strings.ToLower(a.Key) {
			case "rel":
				rel = strings.ToLower(a.Val)
			case "href":
				href = a.Val
			}
		}
		if href != "" && strings.Contains(rel, "stylesheet") {
			src.Links = append(src.Links, href)
		}
	}
}
