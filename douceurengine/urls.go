package douceurengine

import (
	"strings"

	"github.com/npillmayer/stylecache/css"
	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// rewriteURLs resolves every url() token of a property value against base.
func rewriteURLs(value string, base string) string {
	if base == "" || !strings.Contains(strings.ToLower(value), "url(") {
		return value
	}
	var b strings.Builder
	lexer := tcss.NewLexer(parse.NewInput(strings.NewReader(value)))
	for {
		tt, data := lexer.Next()
		if tt == tcss.ErrorToken {
			break
		}
		if tt == tcss.URLToken {
			target := urlTarget(string(data))
			if !isAbsoluteURL(target) {
				b.WriteString(`url("` + css.ResolveURL(base, target) + `")`)
				continue
			}
		}
		b.Write(data)
	}
	return b.String()
}

// importTarget extracts the target of an @import prelude, which may be a
// string or a url() token.
func importTarget(prelude string) string {
	lexer := tcss.NewLexer(parse.NewInput(strings.NewReader(prelude)))
	for {
		tt, data := lexer.Next()
		switch tt {
		case tcss.ErrorToken:
			return ""
		case tcss.StringToken:
			return unquote(string(data))
		case tcss.URLToken:
			return urlTarget(string(data))
		}
	}
}

// urlTarget strips "url(" and ")" and quotes from a URL token.
func urlTarget(tok string) string {
	s := tok
	if len(s) >= 4 && strings.EqualFold(s[:4], "url(") {
		s = s[4:]
	}
	s = strings.TrimSuffix(s, ")")
	return unquote(strings.TrimSpace(s))
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// isAbsoluteURL is true for targets which must not be joined to a base:
// URLs with a scheme, protocol-relative and root-relative URLs, and
// fragments.
func isAbsoluteURL(s string) bool {
	if s == "" || strings.HasPrefix(s, "/") || strings.HasPrefix(s, "#") {
		return true
	}
	if i := strings.IndexByte(s, ':'); i > 0 {
		for _, r := range s[:i] {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
				return false
			}
		}
		return true
	}
	return false
}
