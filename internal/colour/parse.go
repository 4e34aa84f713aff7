package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// parsers is the notation-keyed dispatch table used by Parse.
var parsers = [...]func(string) (RGB, error){
	NotationRGB:    ParseRGB,
	NotationHEX:    ParseHEX,
	NotationDEC:    ParseDEC,
	NotationHSBHSV: ParseHSBHSV,
	NotationHSL:    ParseHSL,
	NotationCMYK:   ParseCMYK,
}

// Parse converts text written in notation n into its canonical colour.
// On failure the returned RGB is the zero value and must not be used; the
// error is a *ParseError wrapping ErrMalformedInput or ErrOutOfRange.
func Parse(n Notation, text string) (RGB, error) {
	if !n.Valid() {
		return RGB{}, fmt.Errorf("unsupported notation: %s", n)
	}
	return parsers[n](text)
}

// field is a single tuple component after cleanup.
type field struct {
	text    string
	percent bool
}

// splitTuple strips brackets, degree signs and whitespace, splits on commas
// and requires exactly want fields. Percent signs are removed from each field
// and recorded on it.
func splitTuple(n Notation, input string, want int) ([]field, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '(' || r == ')' || r == '[' || r == ']' || r == '°':
			return -1
		}
		return r
	}, input)

	if cleaned == "" {
		return nil, malformed(n, input, "", "empty input")
	}

	parts := strings.Split(cleaned, ",")
	if len(parts) != want {
		return nil, malformed(n, input, "", fmt.Sprintf("expected %d comma-separated fields, got %d", want, len(parts)))
	}

	fields := make([]field, len(parts))
	for i, p := range parts {
		percent := strings.Contains(p, "%")
		p = strings.ReplaceAll(p, "%", "")
		if p == "" {
			return nil, malformed(n, input, fmt.Sprintf("field %d", i+1), "empty field")
		}
		fields[i] = field{text: p, percent: percent}
	}
	return fields, nil
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parseChannel parses an integer RGB channel in [0, 255].
func parseChannel(n Notation, input, name, text string) (uint8, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, outOfRange(n, input, name, fmt.Sprintf("%s is not in [0, 255]", text))
		}
		return 0, malformed(n, input, name, fmt.Sprintf("%q is not an integer", text))
	}
	if v < 0 || v > 255 {
		return 0, outOfRange(n, input, name, fmt.Sprintf("%d is not in [0, 255]", v))
	}
	return uint8(v), nil
}

// parseNumber parses a finite real number.
func parseNumber(n Notation, input, name, text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, malformed(n, input, name, fmt.Sprintf("%q is not a number", text))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, malformed(n, input, name, fmt.Sprintf("%q is not a finite number", text))
	}
	return v, nil
}

// parseFraction parses a percentage field and returns it divided by 100,
// rejecting results outside [0, 1].
func parseFraction(n Notation, input, name, text string) (float64, error) {
	v, err := parseNumber(n, input, name, text)
	if err != nil {
		return 0, err
	}
	frac := v / 100
	if frac < 0 || frac > 1 {
		return 0, outOfRange(n, input, name, fmt.Sprintf("%s%% is not in [0%%, 100%%]", text))
	}
	return frac, nil
}

// ParseRGB parses an "(r, g, b)" tuple of integers in [0, 255].
func ParseRGB(text string) (RGB, error) {
	fields, err := splitTuple(NotationRGB, text, 3)
	if err != nil {
		return RGB{}, err
	}

	var channels [3]uint8
	for i, name := range [...]string{"red", "green", "blue"} {
		channels[i], err = parseChannel(NotationRGB, text, name, fields[i].text)
		if err != nil {
			return RGB{}, err
		}
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// ParseHEX parses RRGGBB, optionally prefixed with "#", "0x" or "0X". An
// eight-digit AARRGGBB value is accepted and its alpha pair dropped once every
// digit has been validated. Whitespace anywhere in the input is ignored.
func ParseHEX(text string) (RGB, error) {
	hex := stripSpace(text)
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}

	if len(hex) != 6 && len(hex) != 8 {
		return RGB{}, malformed(NotationHEX, text, "", fmt.Sprintf("expected 6 or 8 hex digits, got %d characters", len(hex)))
	}

	// ParseUint rejects signs, so only [0-9A-Fa-f] gets through.
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, malformed(NotationHEX, text, "", fmt.Sprintf("%q contains a character outside [0-9A-F]", hex))
	}
	v &= MaxPacked
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParseDEC parses a packed 24-bit decimal integer (R*65536 + G*256 + B).
func ParseDEC(text string) (RGB, error) {
	dec := stripSpace(text)
	if dec == "" {
		return RGB{}, malformed(NotationDEC, text, "", "empty input")
	}

	v, err := strconv.Atoi(dec)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return RGB{}, outOfRange(NotationDEC, text, "", fmt.Sprintf("not in [0, %d]", MaxPacked))
		}
		return RGB{}, malformed(NotationDEC, text, "", fmt.Sprintf("%q is not an integer", dec))
	}
	if v < 0 || v > MaxPacked {
		return RGB{}, outOfRange(NotationDEC, text, "", fmt.Sprintf("%d is not in [0, %d]", v, MaxPacked))
	}

	red := v / 65536
	rem := v % 65536
	return RGB{R: uint8(red), G: uint8(rem / 256), B: uint8(rem % 256)}, nil
}

// parseHueTuple parses the shared "(H, S%, X%)" shape of HSB/HSV and HSL.
func parseHueTuple(n Notation, text, third string) (h, s, x float64, err error) {
	fields, err := splitTuple(n, text, 3)
	if err != nil {
		return 0, 0, 0, err
	}
	if h, err = parseNumber(n, text, "hue", fields[0].text); err != nil {
		return 0, 0, 0, err
	}
	if s, err = parseFraction(n, text, "saturation", fields[1].text); err != nil {
		return 0, 0, 0, err
	}
	if x, err = parseFraction(n, text, third, fields[2].text); err != nil {
		return 0, 0, 0, err
	}
	return CyclicReduce(h), s, x, nil
}

// ParseHSBHSV parses an "(H, S%, B%)" tuple. The hue may be any angle.
func ParseHSBHSV(text string) (RGB, error) {
	h, s, v, err := parseHueTuple(NotationHSBHSV, text, "brightness")
	if err != nil {
		return RGB{}, err
	}
	return HSBToRGB(h, s, v), nil
}

// ParseHSL parses an "(H, S%, L%)" tuple. The hue may be any angle.
func ParseHSL(text string) (RGB, error) {
	h, s, l, err := parseHueTuple(NotationHSL, text, "lightness")
	if err != nil {
		return RGB{}, err
	}
	return HSLToRGB(h, s, l), nil
}

// ParseCMYK parses a "(C, M, Y, K)" tuple. Bare components are fractions in
// [0, 1]; components written with a trailing "%" are percentages.
func ParseCMYK(text string) (RGB, error) {
	fields, err := splitTuple(NotationCMYK, text, 4)
	if err != nil {
		return RGB{}, err
	}

	var comps [4]float64
	for i, name := range [...]string{"cyan", "magenta", "yellow", "black key"} {
		v, err := parseNumber(NotationCMYK, text, name, fields[i].text)
		if err != nil {
			return RGB{}, err
		}
		if fields[i].percent {
			v /= 100
		}
		if v < 0 || v > 1 {
			return RGB{}, outOfRange(NotationCMYK, text, name, fmt.Sprintf("%s is not in [0.00, 1.00]", fields[i].text))
		}
		comps[i] = v
	}
	return CMYKToRGB(comps[0], comps[1], comps[2], comps[3]), nil
}
