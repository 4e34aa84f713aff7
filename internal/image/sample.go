package image

import (
	"fmt"
	"image"

	"github.com/jmylchreest/colourcalc/internal/colour"
)

// SamplePixel returns the canonical colour of the pixel at (x, y), measured
// from the image's top-left corner. Alpha is discarded.
func SamplePixel(img image.Image, x, y int) (colour.RGB, error) {
	b := img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return colour.RGB{}, fmt.Errorf("point (%d, %d) is outside the %dx%d image", x, y, b.Dx(), b.Dy())
	}
	return colour.FromColor(img.At(p.X, p.Y)), nil
}

// AverageRegion returns the mean colour of the pixels in r, given relative to
// the image's top-left corner. The region is clipped to the image; an empty
// intersection is an error.
func AverageRegion(img image.Image, r image.Rectangle) (colour.RGB, error) {
	b := img.Bounds()
	area := r.Add(b.Min).Intersect(b)
	if area.Empty() {
		return colour.RGB{}, fmt.Errorf("region %v does not overlap the %dx%d image", r, b.Dx(), b.Dy())
	}

	var sr, sg, sb, n int
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c := colour.FromColor(img.At(x, y))
			sr += int(c.R)
			sg += int(c.G)
			sb += int(c.B)
			n++
		}
	}

	return colour.RGB{
		R: uint8((sr + n/2) / n),
		G: uint8((sg + n/2) / n),
		B: uint8((sb + n/2) / n),
	}, nil
}

// Sample picks a colour at (x, y). A positive radius averages the square of
// side 2*radius+1 centred on the point instead of reading a single pixel.
func Sample(img image.Image, x, y, radius int) (colour.RGB, error) {
	if radius < 0 {
		return colour.RGB{}, fmt.Errorf("radius must not be negative: %d", radius)
	}
	if radius == 0 {
		return SamplePixel(img, x, y)
	}
	if !image.Pt(x, y).In(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy())) {
		return colour.RGB{}, fmt.Errorf("point (%d, %d) is outside the %dx%d image", x, y, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return AverageRegion(img, image.Rect(x-radius, y-radius, x+radius+1, y+radius+1))
}
