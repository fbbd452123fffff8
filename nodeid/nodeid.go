package nodeid

import "unique"

// ID is an interned node handle. The zero value is None.
type ID struct {
	h unique.Handle[string]
}

// None is the ID for "no node".
var None ID

// Intern returns the canonical ID for a node handle. Equal inputs return
// equal IDs. The empty string interns to None.
func Intern(s string) ID {
	if s == "" {
		return None
	}
	return ID{h: unique.Make(s)}
}

// IsNone is true for the ID denoting "no node".
func (id ID) IsNone() bool {
	return id == None
}

// String returns the handle text the ID was interned from.
func (id ID) String() string {
	if id.IsNone() {
		return ""
	}
	return id.h.Value()
}

// Of interns a list of handles, dropping empty ones.
func Of(handles ...string) []ID {
	ids := make([]ID, 0, len(handles))
	for _, s := range handles {
		if id := Intern(s); !id.IsNone() {
			ids = append(ids, id)
		}
	}
	return ids
}
