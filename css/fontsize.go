package css

import (
	"errors"
	"fmt"
	"strings"
)

// FontKeyword is an absolute-size keyword for property 'font-size'.
type FontKeyword uint8

// Absolute-size keywords, from smallest to largest.
const (
	XXSmall FontKeyword = iota
	XSmall
	Small
	Medium
	Large
	XLarge
	XXLarge
)

var fontKeywords = [...]string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large"}

// Keyword factors relative to the user agent's medium font size.
var fontKeywordFactor = [...]float64{0.5625, 0.625, 0.8125, 1.0, 1.125, 1.5, 2.0}

func (k FontKeyword) String() string {
	if int(k) < len(fontKeywords) {
		return fontKeywords[k]
	}
	return fmt.Sprintf("font-keyword(%d)", k)
}

// Factor returns the scaling factor for k relative to 'medium'.
func (k FontKeyword) Factor() float64 {
	if int(k) < len(fontKeywordFactor) {
		return fontKeywordFactor[k]
	}
	return 1.0
}

// Relative steps 'larger' and 'smaller' scale the parent's size by this factor.
const FontStep = 1.2

// x-height of a font as a fraction of its em size, used for 'ex'
const exFactor = 0.6

const (
	fsKeyword uint8 = iota + 1
	fsLarger
	fsSmaller
	fsLength
)

// FontSize is an option type for the specified value of 'font-size'.
/*
type FontSize
	= Keyword k
	| Larger
	| Smaller
	| JustLength length
*/
type FontSize struct {
	kind    uint8
	keyword FontKeyword
	length  Length
}

// SizeKeyword creates a font size from an absolute-size keyword.
func SizeKeyword(k FontKeyword) FontSize {
	return FontSize{kind: fsKeyword, keyword: k}
}

// Larger is the relative font size 'larger'.
func Larger() FontSize {
	return FontSize{kind: fsLarger}
}

// Smaller is the relative font size 'smaller'.
func Smaller() FontSize {
	return FontSize{kind: fsSmaller}
}

// JustLength creates a font size from a length, which may be relative.
func JustLength(l Length) FontSize {
	return FontSize{kind: fsLength, length: l}
}

// IsSet is false for the zero value.
func (fs FontSize) IsSet() bool {
	return fs.kind != 0
}

func (fs FontSize) String() string {
	switch fs.kind {
	case fsKeyword:
		return fs.keyword.String()
	case fsLarger:
		return "larger"
	case fsSmaller:
		return "smaller"
	case fsLength:
		return fs.length.String()
	}
	return "<unset>"
}

// Match returns a matcher for a font size, to be used in a switch:
//
//     switch m := fs.Match(); m {
//     case m.Keyword(&k): …
//     case m.Larger():    …
//     }
func (fs FontSize) Match() *FontSizeMatcher {
	return &FontSizeMatcher{fs: fs}
}

// FontSizeMatcher matches the variants of a FontSize.
type FontSizeMatcher struct {
	fs FontSize
}

// Keyword matches an absolute-size keyword and stores it in k, if k is non-nil.
func (m *FontSizeMatcher) Keyword(k *FontKeyword) *FontSizeMatcher {
	if m.fs.kind == fsKeyword {
		if k != nil {
			*k = m.fs.keyword
		}
		return m
	}
	return nil
}

// Larger matches 'larger'.
func (m *FontSizeMatcher) Larger() *FontSizeMatcher {
	if m.fs.kind == fsLarger {
		return m
	}
	return nil
}

// Smaller matches 'smaller'.
func (m *FontSizeMatcher) Smaller() *FontSizeMatcher {
	if m.fs.kind == fsSmaller {
		return m
	}
	return nil
}

// Length matches a length and stores it in l, if l is non-nil.
func (m *FontSizeMatcher) Length(l *Length) *FontSizeMatcher {
	if m.fs.kind == fsLength {
		if l != nil {
			*l = m.fs.length
		}
		return m
	}
	return nil
}

// ParseFontSize parses the specified value of property 'font-size'.
func ParseFontSize(s string) (FontSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "larger":
		return Larger(), nil
	case "smaller":
		return Smaller(), nil
	}
	for k, name := range fontKeywords {
		if s == name {
			return SizeKeyword(FontKeyword(k)), nil
		}
	}
	l, err := ParseLength(s)
	if err != nil {
		return FontSize{}, fmt.Errorf("css: cannot parse font-size: %w", err)
	}
	return JustLength(l), nil
}

// ErrRelativeParent is returned if a parent font size has not been resolved
// to an absolute length.
var ErrRelativeParent = errors.New("css: parent font size is relative")

// ResolveFontSize computes an absolute font size.
//
// base is the user agent's medium font size. parent is the parent's computed
// font size, which has to be absolute; if parent is nil, the medium size is
// used in its place. Keywords scale base, the relative steps 'larger' and
// 'smaller' scale the parent's size. em and ex lengths are multiples of the
// parent's size, percentages are hundredths of it. Other lengths are returned
// unchanged.
func ResolveFontSize(base Length, parent *Length, size FontSize) (Length, error) {
	p := base.Scale(Medium.Factor())
	if parent != nil {
		if !parent.IsAbsolute() {
			return Length{}, fmt.Errorf("%w: %s", ErrRelativeParent, parent)
		}
		p = *parent
	}
	var k FontKeyword
	var l Length
	switch m := size.Match(); m {
	case m.Keyword(&k):
		return base.Scale(k.Factor()), nil
	case m.Larger():
		return p.Scale(FontStep), nil
	case m.Smaller():
		return Length{Value: p.Value / FontStep, Unit: p.Unit}, nil
	case m.Length(&l):
		switch l.Unit {
		case EM:
			return p.Scale(l.Value), nil
		case EX:
			return p.Scale(l.Value * exFactor), nil
		case PCT:
			return Length{Value: l.Value * p.Value / 100, Unit: p.Unit}, nil
		}
		return l, nil
	}
	tracer().Errorf("cannot resolve unset font size")
	return p, fmt.Errorf("css: font size is unset")
}
