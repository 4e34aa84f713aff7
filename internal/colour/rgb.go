// Package colour converts colours between their common textual notations.
//
// Every notation parses into, and formats from, a single canonical value: an
// 8-bit-per-channel RGB triple. All functions in this package are pure and
// safe for concurrent use.
package colour

import (
	"fmt"
	"image/color"
)

// RGB is the canonical colour representation. Each channel is an 8-bit value,
// so the [0, 255] range holds by construction. Alpha is not modelled.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// MaxPacked is the largest value a 24-bit packed colour can hold (0xFFFFFF).
const MaxPacked = 1<<24 - 1

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase web hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Packed returns the colour as a big-endian 24-bit integer: R*65536 + G*256 + B.
func (rgb RGB) Packed() int {
	return int(rgb.R)<<16 | int(rgb.G)<<8 | int(rgb.B)
}

// RGBA implements color.Color so an RGB can be handed to image code directly.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}.RGBA()
}

// FromColor converts a color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// fromUnit builds an RGB from three channel intensities in [0, 1], rounding
// half-up and clamping each channel to [0, 255].
func fromUnit(r, g, b float64) RGB {
	return RGB{
		R: clampChannel(RoundHalfUp(r * 255)),
		G: clampChannel(RoundHalfUp(g * 255)),
		B: clampChannel(RoundHalfUp(b * 255)),
	}
}

// unit returns the channels scaled to [0, 1].
func (rgb RGB) unit() (r, g, b float64) {
	return float64(rgb.R) / 255.0, float64(rgb.G) / 255.0, float64(rgb.B) / 255.0
}
