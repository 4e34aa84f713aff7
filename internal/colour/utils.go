package colour

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// CyclicReduce normalises a hue angle to [0, 360), accounting for the colour
// wheel repeating every 360 degrees. CyclicReduce(h) == CyclicReduce(h+360k)
// for any integer k.
func CyclicReduce(h float64) float64 {
	r := math.Mod(h, 360)
	if r < 0 {
		r += 360
	}
	// Adding 360 to a tiny negative remainder can round up to exactly 360.
	if r >= 360 {
		r = 0
	}
	return r
}

// RoundHalfUp rounds x to the nearest integer, with halves rounded towards
// positive infinity.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// clampChannel limits v to the 8-bit channel range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampUnit limits v to [0, 1].
func clampUnit(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// NormalizeDecimal renders v with exactly two digits after the decimal point
// (e.g. "0.92", "1.00"). Rounding is half away from zero, applied to the
// shortest decimal representation of v, so 0.145 becomes "0.15" even though
// its binary value lies slightly below. Zero is never rendered as "-0.00".
func NormalizeDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// PercentToDecimal renders a whole percentage as a two-decimal fraction,
// e.g. 60 -> "0.60".
func PercentToDecimal(percent int) string {
	return NormalizeDecimal(float64(percent) / 100)
}

// hslSaturationFromHSB converts an HSB/HSV saturation into HSL space given the
// HSB value v and the HSL lightness l. At l == 0 and l == 1 the colour is black
// or white and the saturation is 0.
func hslSaturationFromHSB(v, l float64) float64 {
	if l == 0 || l == 1 {
		return 0
	}
	return clampUnit((v - l) / math.Min(l, 1-l))
}
