package engine

import (
	"fmt"
	"strings"
)

// Pseudo enumerates the pseudo-elements a style set has slots for.
type Pseudo uint8

// Pseudo-element slots.
const (
	PseudoNone Pseudo = iota
	PseudoFirstLine
	PseudoFirstLetter
	PseudoBefore
	PseudoAfter
	PseudoCount // number of pseudo-element slots
)

var pseudoNames = [PseudoCount]string{"none", "first-line", "first-letter", "before", "after"}

func (p Pseudo) String() string {
	if p < PseudoCount {
		return pseudoNames[p]
	}
	return fmt.Sprintf("pseudo(%d)", p)
}

// ParsePseudo maps a host-supplied pseudo-element name to a slot.
// Names have to match exactly. Other input results in an error with code
// UnknownPseudoElement.
func ParsePseudo(name string) (Pseudo, error) {
	for i, n := range pseudoNames {
		if n == name {
			return Pseudo(i), nil
		}
	}
	return PseudoNone, Errorf(UnknownPseudoElement, "parse pseudo", "unknown pseudo-element %q", name)
}

// PseudoForElement maps a selector's pseudo-element (without colons, as
// reported by selector parsers) to a slot.
func PseudoForElement(name string) (Pseudo, bool) {
	if name == "" {
		return PseudoNone, true
	}
	name = strings.ToLower(name)
	for i := PseudoFirstLine; i < PseudoCount; i++ {
		if pseudoNames[i] == name {
			return i, true
		}
	}
	return PseudoNone, false
}

// Level is a CSS language level a stylesheet is parsed with.
type Level uint8

// Supported CSS levels.
const (
	Level1 Level = iota + 1
	Level2
	Level21
	Level3
)

// DefaultLevel is the level used for inline styles.
const DefaultLevel = Level3

var levelNames = map[string]Level{"1": Level1, "2": Level2, "2.1": Level21, "3": Level3}

func (l Level) String() string {
	switch l {
	case Level1:
		return "1"
	case Level2:
		return "2"
	case Level21:
		return "2.1"
	case Level3:
		return "3"
	}
	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel maps a host-supplied level string to a level. Only "1", "2",
// "2.1" and "3" are accepted; other input results in an error with code
// UnknownLanguageLevel.
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[s]; ok {
		return l, nil
	}
	return 0, Errorf(UnknownLanguageLevel, "parse level", "unknown CSS level %q", s)
}

// Media is a set of media types.
type Media uint16

// Media types.
const (
	MediaAural Media = 1 << iota
	MediaBraille
	MediaEmbossed
	MediaHandheld
	MediaPrint
	MediaProjection
	MediaScreen
	MediaSpeech
	MediaTTY
	MediaTV
	MediaAll Media = 1<<iota - 1
)

var mediaNames = []struct {
	name  string
	media Media
}{
	{"aural", MediaAural}, {"braille", MediaBraille}, {"embossed", MediaEmbossed},
	{"handheld", MediaHandheld}, {"print", MediaPrint}, {"projection", MediaProjection},
	{"screen", MediaScreen}, {"speech", MediaSpeech}, {"tty", MediaTTY}, {"tv", MediaTV},
}

// ParseMedia parses a comma separated media list, e.g. "screen, print".
// An empty list and "all" denote all media. Unknown media types are
// reported as an error.
func ParseMedia(s string) (Media, error) {
	var m Media
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || part == "all" {
			m |= MediaAll
			continue
		}
		found := false
		for _, mn := range mediaNames {
			if mn.name == part {
				m |= mn.media
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown media type %q", part)
		}
	}
	return m, nil
}

func (m Media) String() string {
	if m&MediaAll == MediaAll {
		return "all"
	}
	var names []string
	for _, mn := range mediaNames {
		if m&mn.media != 0 {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, ",")
}
