package colour

import "strings"

// notationUnknown marks errors raised before a notation was chosen.
const notationUnknown Notation = -1

// Detect guesses the notation of text from its shape. HEX is recognised by a
// "#" or "0x" prefix, DEC by a lone unsigned integer, CMYK by four fields and
// RGB by three plain fields. Three fields carrying "%" or "°" could be either
// HSB/HSV or HSL, so Detect refuses to guess.
func Detect(text string) (Notation, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &ParseError{Notation: notationUnknown, Input: text, Detail: "empty input", Err: ErrMalformedInput}
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "#") || strings.HasPrefix(lower, "0x") {
		return NotationHEX, nil
	}

	if isDigits(s) {
		return NotationDEC, nil
	}

	switch strings.Count(s, ",") {
	case 3:
		return NotationCMYK, nil
	case 2:
		if strings.ContainsAny(s, "%°") {
			return 0, &ParseError{Notation: notationUnknown, Input: text, Detail: "ambiguous between HSB/HSV and HSL, name the notation explicitly", Err: ErrMalformedInput}
		}
		return NotationRGB, nil
	}

	return 0, &ParseError{Notation: notationUnknown, Input: text, Detail: "unrecognised notation", Err: ErrMalformedInput}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
