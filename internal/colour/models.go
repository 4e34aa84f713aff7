package colour

import "math"

// HSB is a colour in the hue/saturation/brightness model (also called HSV).
// H is in degrees [0, 360); S and V are in [0, 1].
type HSB struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL is a colour in the hue/saturation/lightness model.
// H is in degrees [0, 360); S and L are in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// CMYK is a colour in the subtractive cyan/magenta/yellow/key model.
// All components are in [0, 1].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// HSB converts the colour to the HSB/HSV model using the max/min/chroma form.
// Achromatic colours report a hue of 0.
func (rgb RGB) HSB() HSB {
	r, g, b := int(rgb.R), int(rgb.G), int(rgb.B)
	cmax := max(r, g, b)
	cmin := min(r, g, b)

	v := float64(cmax) / 255.0
	if cmax == cmin {
		return HSB{H: 0, S: 0, V: v}
	}

	span := float64(cmax - cmin)
	s := span / float64(cmax)

	rc := float64(cmax-r) / span
	gc := float64(cmax-g) / span
	bc := float64(cmax-b) / span

	var h float64
	switch cmax {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}

	return HSB{H: CyclicReduce(h * 60), S: s, V: v}
}

// HSL converts the colour to the HSL model, deriving it from the HSB form:
// L = (2 - S) * V / 2, with the HSL saturation spread over min(L, 1-L).
func (rgb RGB) HSL() HSL {
	hsb := rgb.HSB()
	l := (2 - hsb.S) * hsb.V / 2
	return HSL{H: hsb.H, S: hslSaturationFromHSB(hsb.V, l), L: l}
}

// CMYK converts the colour to the CMYK model. Pure black is (0, 0, 0, 1).
func (rgb RGB) CMYK() CMYK {
	r, g, b := rgb.unit()
	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{K: 1}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k),
		M: (1 - g - k) / (1 - k),
		Y: (1 - b - k) / (1 - k),
		K: k,
	}
}

// HSBToRGB converts an HSB/HSV colour to RGB. h is any hue angle in degrees
// and is reduced cyclically; s and v are in [0, 1].
func HSBToRGB(h, s, v float64) RGB {
	if s == 0 {
		return fromUnit(v, v, v)
	}

	hh := CyclicReduce(h) / 60
	sector := math.Floor(hh)
	f := hh - sector

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) {
	case 0:
		return fromUnit(v, t, p)
	case 1:
		return fromUnit(q, v, p)
	case 2:
		return fromUnit(p, v, t)
	case 3:
		return fromUnit(p, q, v)
	case 4:
		return fromUnit(t, p, v)
	default:
		return fromUnit(v, p, q)
	}
}

// HSLToRGB converts an HSL colour to RGB. h is any hue angle in degrees and
// is reduced cyclically; s and l are in [0, 1]. Source:
// https://en.wikipedia.org/wiki/HSL_and_HSV#HSL_to_RGB
func HSLToRGB(h, s, l float64) RGB {
	chroma := (1 - math.Abs(2*l-1)) * s
	huePrime := CyclicReduce(h) / 60
	x := chroma * (1 - math.Abs(math.Mod(huePrime, 2)-1))

	var r, g, b float64
	switch int(huePrime) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := l - chroma/2
	return fromUnit(r+m, g+m, b+m)
}

// CMYKToRGB converts a CMYK colour with components in [0, 1] to RGB.
// Source: https://www.rapidtables.com/convert/color/cmyk-to-rgb.html
func CMYKToRGB(c, m, y, k float64) RGB {
	return RGB{
		R: clampChannel(RoundHalfUp(255 * (1 - c) * (1 - k))),
		G: clampChannel(RoundHalfUp(255 * (1 - m) * (1 - k))),
		B: clampChannel(RoundHalfUp(255 * (1 - y) * (1 - k))),
	}
}
