package css

import "strings"

// ResolveURL joins a relative reference found in a stylesheet onto the
// stylesheet's base URL.
//
// The join is purely textual: with an empty base, rel is returned unchanged.
// Otherwise a single trailing slash is stripped from base and the result is
// base + "/" + rel. No normalization of any kind is performed.
func ResolveURL(base, rel string) string {
	if base == "" {
		return rel
	}
	base = strings.TrimSuffix(base, "/")
	return base + "/" + rel
}
