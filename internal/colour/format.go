package colour

import (
	"fmt"
	"strconv"
)

// Rendering holds the equivalent textual forms of one colour in one notation,
// ordered from the most human-readable to the most copy-paste friendly.
type Rendering struct {
	Notation Notation `json:"notation"`
	Forms    []string `json:"forms"`
}

// Representations is a colour rendered in every supported notation.
type Representations struct {
	RGB    Rendering `json:"rgb"`
	HEX    Rendering `json:"hex"`
	DEC    Rendering `json:"dec"`
	HSBHSV Rendering `json:"hsbhsv"`
	HSL    Rendering `json:"hsl"`
	CMYK   Rendering `json:"cmyk"`
}

// All returns the renderings in display order.
func (r Representations) All() []Rendering {
	return []Rendering{r.RGB, r.HEX, r.DEC, r.HSBHSV, r.HSL, r.CMYK}
}

// Get returns the rendering for notation n.
func (r Representations) Get(n Notation) (Rendering, bool) {
	if !n.Valid() {
		return Rendering{}, false
	}
	return r.All()[n], true
}

// formatters is the notation-keyed dispatch table used by FormatAs.
var formatters = [...]func(RGB) Rendering{
	NotationRGB:    formatRGB,
	NotationHEX:    formatHEX,
	NotationDEC:    formatDEC,
	NotationHSBHSV: formatHSBHSV,
	NotationHSL:    formatHSL,
	NotationCMYK:   formatCMYK,
}

// Format renders c in all six notations.
func Format(c RGB) Representations {
	return Representations{
		RGB:    formatRGB(c),
		HEX:    formatHEX(c),
		DEC:    formatDEC(c),
		HSBHSV: formatHSBHSV(c),
		HSL:    formatHSL(c),
		CMYK:   formatCMYK(c),
	}
}

// FormatAs renders c in a single notation.
func FormatAs(c RGB, n Notation) (Rendering, error) {
	if !n.Valid() {
		return Rendering{}, fmt.Errorf("unsupported notation: %s", n)
	}
	return formatters[n](c), nil
}

func formatRGB(c RGB) Rendering {
	return Rendering{
		Notation: NotationRGB,
		Forms: []string{
			fmt.Sprintf("[red = %d, green = %d, blue = %d]", c.R, c.G, c.B),
			fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B),
		},
	}
}

func formatHEX(c RGB) Rendering {
	hex := fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
	return Rendering{
		Notation: NotationHEX,
		Forms:    []string{"0x" + hex, "#" + hex, hex},
	}
}

func formatDEC(c RGB) Rendering {
	return Rendering{
		Notation: NotationDEC,
		Forms:    []string{strconv.Itoa(c.Packed())},
	}
}

// roundHue rounds a hue to whole degrees, folding 360 back to 0.
func roundHue(h float64) int {
	return RoundHalfUp(h) % 360
}

// formatHueTuple renders the labelled, percent and decimal forms shared by
// HSB/HSV and HSL.
func formatHueTuple(n Notation, third string, h, s, x float64) Rendering {
	hue := roundHue(h)
	sat := RoundHalfUp(s * 100)
	val := RoundHalfUp(x * 100)
	return Rendering{
		Notation: n,
		Forms: []string{
			fmt.Sprintf("[hue = %d, saturation = %d%%, %s = %d%%]", hue, sat, third, val),
			fmt.Sprintf("(%d, %d%%, %d%%)", hue, sat, val),
			fmt.Sprintf("(%d, %s, %s)", hue, PercentToDecimal(sat), PercentToDecimal(val)),
		},
	}
}

func formatHSBHSV(c RGB) Rendering {
	hsb := c.HSB()
	return formatHueTuple(NotationHSBHSV, "brightness", hsb.H, hsb.S, hsb.V)
}

func formatHSL(c RGB) Rendering {
	hsl := c.HSL()
	return formatHueTuple(NotationHSL, "lightness", hsl.H, hsl.S, hsl.L)
}

func formatCMYK(c RGB) Rendering {
	cmyk := c.CMYK()
	cs, ms, ys, ks := NormalizeDecimal(cmyk.C), NormalizeDecimal(cmyk.M), NormalizeDecimal(cmyk.Y), NormalizeDecimal(cmyk.K)
	return Rendering{
		Notation: NotationCMYK,
		Forms: []string{
			fmt.Sprintf("[cyan = %s, magenta = %s, yellow = %s, black key = %s]", cs, ms, ys, ks),
			fmt.Sprintf("(%s, %s, %s, %s)", cs, ms, ys, ks),
			fmt.Sprintf("(%d%%, %d%%, %d%%, %d%%)",
				RoundHalfUp(cmyk.C*100), RoundHalfUp(cmyk.M*100), RoundHalfUp(cmyk.Y*100), RoundHalfUp(cmyk.K*100)),
		},
	}
}
