package colour

import (
	"fmt"
	"strings"
)

// Notation identifies a textual colour encoding.
type Notation int

// Supported notations, in display order.
const (
	NotationRGB Notation = iota
	NotationHEX
	NotationDEC
	NotationHSBHSV
	NotationHSL
	NotationCMYK
)

var notationNames = [...]string{
	NotationRGB:    "RGB",
	NotationHEX:    "HEX",
	NotationDEC:    "DEC",
	NotationHSBHSV: "HSB/HSV",
	NotationHSL:    "HSL",
	NotationCMYK:   "CMYK",
}

// notationAliases maps lowercased user input to a notation.
var notationAliases = map[string]Notation{
	"rgb":     NotationRGB,
	"hex":     NotationHEX,
	"dec":     NotationDEC,
	"decimal": NotationDEC,
	"hsb":     NotationHSBHSV,
	"hsv":     NotationHSBHSV,
	"hsbhsv":  NotationHSBHSV,
	"hsb/hsv": NotationHSBHSV,
	"hsl":     NotationHSL,
	"cmyk":    NotationCMYK,
}

// Notations returns every supported notation in display order.
func Notations() []Notation {
	return []Notation{NotationRGB, NotationHEX, NotationDEC, NotationHSBHSV, NotationHSL, NotationCMYK}
}

// String returns the display name of the notation.
func (n Notation) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Notation(%d)", int(n))
	}
	return notationNames[n]
}

// Valid reports whether n is one of the supported notations.
func (n Notation) Valid() bool {
	return n >= NotationRGB && n <= NotationCMYK
}

// ParseNotation resolves a notation name case-insensitively.
func ParseNotation(name string) (Notation, error) {
	n, ok := notationAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown notation: %q (supported: rgb, hex, dec, hsb/hsv, hsl, cmyk)", name)
	}
	return n, nil
}

// Set implements pflag.Value.
func (n *Notation) Set(s string) error {
	parsed, err := ParseNotation(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Type implements pflag.Value.
func (n *Notation) Type() string {
	return "notation"
}

// MarshalText implements encoding.TextMarshaler.
func (n Notation) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("invalid notation: %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Notation) UnmarshalText(text []byte) error {
	return n.Set(string(text))
}
