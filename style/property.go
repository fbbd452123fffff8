package style

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties by key. nil is a legal (empty) property map
// for reading.
type PropertyMap map[string]Property

// Get a property's value.
func (pm PropertyMap) Get(key string) (Property, bool) {
	p, ok := pm[key]
	return p, ok
}

// IsSet is a predicated wether a non-empty property is set.
func (pm PropertyMap) IsSet(key string) bool {
	p, ok := pm[key]
	return ok && !p.IsEmpty()
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are converted to lower case, except for values
// which contain quoted strings or URLs.
func (pm PropertyMap) Set(key string, p Property) {
	pm[key] = normalize(p)
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pm PropertyMap) Add(key string, p Property) {
	if _, exists := pm[key]; !exists {
		pm[key] = normalize(p)
	}
}

func normalize(p Property) Property {
	s := strings.TrimSpace(string(p))
	if strings.ContainsAny(s, `"'`) || strings.Contains(strings.ToLower(s), "url(") {
		return Property(s)
	}
	return Property(strings.ToLower(s))
}

// Keys returns the property keys of the map in sorted order.
func (pm PropertyMap) Keys() []string {
	keys := make([]string, 0, len(pm))
	for k := range pm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties, sorted by key.
func (pm PropertyMap) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pm))
	for _, k := range pm.Keys() {
		r = append(r, KeyValue{k, pm[k]})
	}
	return r
}

// Clone creates a shallow copy of the map.
func (pm PropertyMap) Clone() PropertyMap {
	c := make(PropertyMap, len(pm))
	for k, v := range pm {
		c[k] = v
	}
	return c
}

// String serializes the map, one "key: value" line per property, sorted by key.
func (pm PropertyMap) String() string {
	var b strings.Builder
	for _, k := range pm.Keys() {
		fmt.Fprintf(&b, "%s: %s\n", k, pm[k])
	}
	return b.String()
}

// --- CSS knowledge -----------------------------------------------------

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "flow-into", "flow-from":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "overflow-wrap", "hyphens":
		return true
	case "text-align", "text-indent", "text-transform", "border-collapse":
		return true
	}
	return false
}

// IsCompound is true for shorthand properties SplitCompoundProperty can expand.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	switch l {
	case 1:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	case 2:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
	case 3:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
	case 4:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
