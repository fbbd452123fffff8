package douceurengine

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/stylecache/css"
	"github.com/npillmayer/stylecache/engine"
	"github.com/npillmayer/stylecache/style"
)

// Stylesheet is a parsed stylesheet. It implements engine.Stylesheet.
type Stylesheet struct {
	url       string
	level     engine.Level
	inline    bool
	rules     []rule
	decls     []declaration // declarations of an inline style sheet
	imports   []string
	destroyed bool
}

var _ engine.Stylesheet = &Stylesheet{}

// rule is a single selector of a qualified rule, together with the rule's
// declarations.
type rule struct {
	sel   cascadia.Sel
	slot  engine.Pseudo
	spec  cascadia.Specificity
	decls []declaration
	media engine.Media
}

type declaration struct {
	key       string
	value     style.Property
	important bool
}

// URL returns the base URL of the stylesheet.
func (sheet *Stylesheet) URL() string {
	return sheet.url
}

// Level returns the CSS level the stylesheet has been created with.
func (sheet *Stylesheet) Level() engine.Level {
	return sheet.level
}

// IsInline is true for inline style sheets.
func (sheet *Stylesheet) IsInline() bool {
	return sheet.inline
}

// Imports returns the resolved targets of @import rules, in order.
func (sheet *Stylesheet) Imports() []string {
	return sheet.imports
}

// Len returns the number of selectors (or declarations, for inline sheets).
func (sheet *Stylesheet) Len() int {
	if sheet.inline {
		return len(sheet.decls)
	}
	return len(sheet.rules)
}

func parseStylesheet(text string, level engine.Level, url string, inline bool) (*Stylesheet, error) {
	sheet := &Stylesheet{url: url, level: level, inline: inline}
	if inline {
		// douceur drops the value of a final declaration without ';'
		if t := strings.TrimSpace(text); t != "" && !strings.HasSuffix(t, ";") {
			text = t + ";"
		}
		decls, err := parser.ParseDeclarations(text)
		if err != nil {
			return nil, fmt.Errorf("parsing inline style: %w", err)
		}
		sheet.decls = sheet.convert(decls)
		return sheet, nil
	}
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet %q: %w", url, err)
	}
	sheet.walk(parsed.Rules, engine.MediaAll, 0)
	tracer().Debugf("stylesheet %q: %d selectors, %d imports", url, len(sheet.rules), len(sheet.imports))
	return sheet, nil
}

const maxNesting = 16

func (sheet *Stylesheet) walk(rules []*dcss.Rule, media engine.Media, depth int) {
	if depth >= maxNesting {
		return
	}
	for _, r := range rules {
		if r == nil {
			continue
		}
		switch r.Kind {
		case dcss.AtRule:
			switch strings.ToLower(strings.TrimSpace(r.Name)) {
			case "@media":
				sheet.walk(r.Rules, media&mediaQuery(r.Prelude), depth+1)
			case "@supports":
				sheet.walk(r.Rules, media, depth+1)
			case "@import":
				if target := importTarget(r.Prelude); target != "" {
					if !isAbsoluteURL(target) {
						target = css.ResolveURL(sheet.url, target)
					}
					sheet.imports = append(sheet.imports, target)
				}
			default:
				tracer().Debugf("ignoring at-rule %s", r.Name)
			}
		case dcss.QualifiedRule:
			sheet.addRule(r, media)
		}
	}
}

func (sheet *Stylesheet) addRule(r *dcss.Rule, media engine.Media) {
	decls := sheet.convert(r.Declarations)
	if len(decls) == 0 || len(r.Selectors) == 0 {
		return
	}
	group, err := cascadia.ParseGroupWithPseudoElements(strings.Join(r.Selectors, ","))
	if err != nil {
		tracer().Infof("skipping rule with selector %q: %v", r.Prelude, err)
		return
	}
	for _, sel := range group {
		if sel == nil {
			continue
		}
		slot, ok := engine.PseudoForElement(sel.PseudoElement())
		if !ok {
			tracer().Debugf("skipping unsupported pseudo-element ::%s", sel.PseudoElement())
			continue
		}
		sheet.rules = append(sheet.rules, rule{
			sel:   sel,
			slot:  slot,
			spec:  sel.Specificity(),
			decls: decls,
			media: media,
		})
	}
}

// convert normalizes douceur declarations: keys are lower-cased, shorthand
// properties are expanded and url() references resolved.
func (sheet *Stylesheet) convert(decls []*dcss.Declaration) []declaration {
	r := make([]declaration, 0, len(decls))
	for _, d := range decls {
		if d == nil {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(d.Property))
		value := strings.TrimSpace(d.Value)
		if key == "" || value == "" {
			tracer().Debugf("skipping declaration %q with empty key or value", d.Property)
			continue
		}
		value = rewriteURLs(value, sheet.url)
		if style.IsCompound(key) {
			kvs, err := style.SplitCompoundProperty(key, style.Property(value))
			if err != nil {
				tracer().Infof("skipping property %s: %v", key, err)
				continue
			}
			for _, kv := range kvs {
				r = append(r, declaration{key: kv.Key, value: kv.Value, important: d.Important})
			}
			continue
		}
		r = append(r, declaration{key: key, value: style.Property(value), important: d.Important})
	}
	return r
}

// mediaQuery evaluates the media types of an @media prelude, e.g.
// "screen, print" or "only screen and (min-width: 100px)". Media
// features are ignored.
func mediaQuery(prelude string) engine.Media {
	var m engine.Media
	for _, q := range strings.Split(prelude, ",") {
		fields := strings.Fields(strings.ToLower(q))
		negate := false
		if len(fields) > 0 && (fields[0] == "only" || fields[0] == "not") {
			negate = fields[0] == "not"
			fields = fields[1:]
		}
		qm := engine.MediaAll
		if len(fields) > 0 && !strings.HasPrefix(fields[0], "(") {
			var err error
			if qm, err = engine.ParseMedia(fields[0]); err != nil {
				qm = 0
			}
		}
		if negate {
			qm = engine.MediaAll &^ qm
		}
		m |= qm
	}
	return m
}
