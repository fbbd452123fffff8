package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Unit is a CSS length unit.
type Unit uint8

// Units known to the style engines.
const (
	UnitNone Unit = iota // unitless number, e.g. '0'
	PX
	PT
	PC
	IN
	CM
	MM
	EM
	EX
	PCT
)

var unitNames = [...]string{"", "px", "pt", "pc", "in", "cm", "mm", "em", "ex", "%"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("unit(%d)", u)
}

// IsRelative is true for units which need a reference length to be
// converted to an absolute length.
func (u Unit) IsRelative() bool {
	return u == EM || u == EX || u == PCT
}

// Length is a number with a CSS unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Len creates a length from a value and a unit.
func Len(v float64, u Unit) Length {
	return Length{Value: v, Unit: u}
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

// IsAbsolute is true if l does not depend on a reference length.
func (l Length) IsAbsolute() bool {
	return !l.Unit.IsRelative()
}

// Scale returns l multiplied by f, retaining the unit.
func (l Length) Scale(f float64) Length {
	return Length{Value: l.Value * f, Unit: l.Unit}
}

// points per unit, for absolute units
var ptPerUnit = map[Unit]float64{
	UnitNone: 1,
	PT:       1,
	PX:       0.75,
	PC:       12,
	IN:       72,
	CM:       72 / 2.54,
	MM:       72 / 25.4,
}

// Dimen converts an absolute length to a typesetter dimension. Relative lengths
// cannot be converted and return false.
func (l Length) Dimen() (dimen.DU, bool) {
	f, ok := ptPerUnit[l.Unit]
	if !ok {
		return 0, false
	}
	return dimen.DU(math.Round(l.Value * f * float64(dimen.PT))), true
}

// ParseLength parses a CSS length like "12px", "1.5em" or "50%".
// A bare number is accepted as unitless.
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Length{}, fmt.Errorf("css: empty length")
	}
	cut := len(s)
	for cut > 0 && !isNumberByte(s[cut-1]) {
		cut--
	}
	num, unit := s[:cut], s[cut:]
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("css: malformed length %q", s)
	}
	for u, name := range unitNames {
		if name == unit {
			return Length{Value: v, Unit: Unit(u)}, nil
		}
	}
	return Length{}, fmt.Errorf("css: unknown unit %q in length %q", unit, s)
}

func isNumberByte(b byte) bool {
	return b >= '0' && b <= '9' || b == '.'
}
