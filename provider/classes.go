package provider

import (
	"strings"
	"unique"
)

// ParseClassList decodes a class list as returned by Provider.NodeClasses.
//
// The encoding is an array of quoted strings, as in
//
//     ["title", "big"]
//
// Quotes, brackets and whitespace are structural and never part of a class
// name. A comma or a closing bracket ends a class name. An empty array or
// empty text results in an empty list. Malformed input is decoded best
// effort: every class name terminated before the input ends is returned.
//
// Class names are interned, so repeated names share storage.
func ParseClassList(raw string) []string {
	var classes []string
	var token strings.Builder
	for _, r := range raw {
		switch r {
		case '"', '[', ' ', '\t', '\n', '\r', '\f':
			// structural
		case ',', ']':
			if token.Len() > 0 {
				classes = append(classes, unique.Make(token.String()).Value())
				token.Reset()
			}
		default:
			token.WriteRune(r)
		}
	}
	if token.Len() > 0 {
		tracer().Debugf("class list %q is not terminated, dropping %q", raw, token.String())
	}
	return classes
}

// EncodeClassList is the inverse of ParseClassList.
func EncodeClassList(classes []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range classes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(c)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}
