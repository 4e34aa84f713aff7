package colour

import (
	"image/color"
	"testing"
)

func TestFromColor(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "red",
			color: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "grey",
			color: color.Gray{Y: 153},
			want:  RGB{R: 153, G: 153, B: 153},
		},
		{
			name:  "16-bit",
			color: color.RGBA64{R: 0xffff, G: 0x8000, B: 0x00ff, A: 0xffff},
			want:  RGB{R: 255, G: 128, B: 0},
		},
		{
			name:  "round trips through RGBA",
			color: RGB{R: 12, G: 34, B: 56},
			want:  RGB{R: 12, G: 34, B: 56},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.color)
			if got != tt.want {
				t.Errorf("FromColor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: red, want: "#ff0000"},
		{name: "grey", rgb: grey, want: "#999999"},
		{name: "black", rgb: black, want: "#000000"},
		{name: "mixed", rgb: RGB{R: 0x1a, G: 0x2b, B: 0x3c}, want: "#1a2b3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	if got := grey.String(); got != "rgb(153, 153, 153)" {
		t.Errorf("String() = %s, want rgb(153, 153, 153)", got)
	}
}

func TestRGBPacked(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want int
	}{
		{red, 16711680},
		{green, 65280},
		{blue, 255},
		{grey, 10066329},
		{white, MaxPacked},
		{black, 0},
	}

	for _, tt := range tests {
		if got := tt.rgb.Packed(); got != tt.want {
			t.Errorf("%+v.Packed() = %d, want %d", tt.rgb, got, tt.want)
		}
	}
}
