package colour

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		colour RGB
		want   Representations
	}{
		{
			name:   "red",
			colour: red,
			want: Representations{
				RGB:    Rendering{NotationRGB, []string{"[red = 255, green = 0, blue = 0]", "(255, 0, 0)"}},
				HEX:    Rendering{NotationHEX, []string{"0xFF0000", "#FF0000", "FF0000"}},
				DEC:    Rendering{NotationDEC, []string{"16711680"}},
				HSBHSV: Rendering{NotationHSBHSV, []string{"[hue = 0, saturation = 100%, brightness = 100%]", "(0, 100%, 100%)", "(0, 1.00, 1.00)"}},
				HSL:    Rendering{NotationHSL, []string{"[hue = 0, saturation = 100%, lightness = 50%]", "(0, 100%, 50%)", "(0, 1.00, 0.50)"}},
				CMYK:   Rendering{NotationCMYK, []string{"[cyan = 0.00, magenta = 1.00, yellow = 1.00, black key = 0.00]", "(0.00, 1.00, 1.00, 0.00)", "(0%, 100%, 100%, 0%)"}},
			},
		},
		{
			name:   "grey",
			colour: grey,
			want: Representations{
				RGB:    Rendering{NotationRGB, []string{"[red = 153, green = 153, blue = 153]", "(153, 153, 153)"}},
				HEX:    Rendering{NotationHEX, []string{"0x999999", "#999999", "999999"}},
				DEC:    Rendering{NotationDEC, []string{"10066329"}},
				HSBHSV: Rendering{NotationHSBHSV, []string{"[hue = 0, saturation = 0%, brightness = 60%]", "(0, 0%, 60%)", "(0, 0.00, 0.60)"}},
				HSL:    Rendering{NotationHSL, []string{"[hue = 0, saturation = 0%, lightness = 60%]", "(0, 0%, 60%)", "(0, 0.00, 0.60)"}},
				CMYK:   Rendering{NotationCMYK, []string{"[cyan = 0.00, magenta = 0.00, yellow = 0.00, black key = 0.40]", "(0.00, 0.00, 0.00, 0.40)", "(0%, 0%, 0%, 40%)"}},
			},
		},
		{
			name:   "black",
			colour: black,
			want: Representations{
				RGB:    Rendering{NotationRGB, []string{"[red = 0, green = 0, blue = 0]", "(0, 0, 0)"}},
				HEX:    Rendering{NotationHEX, []string{"0x000000", "#000000", "000000"}},
				DEC:    Rendering{NotationDEC, []string{"0"}},
				HSBHSV: Rendering{NotationHSBHSV, []string{"[hue = 0, saturation = 0%, brightness = 0%]", "(0, 0%, 0%)", "(0, 0.00, 0.00)"}},
				HSL:    Rendering{NotationHSL, []string{"[hue = 0, saturation = 0%, lightness = 0%]", "(0, 0%, 0%)", "(0, 0.00, 0.00)"}},
				CMYK:   Rendering{NotationCMYK, []string{"[cyan = 0.00, magenta = 0.00, yellow = 0.00, black key = 1.00]", "(0.00, 0.00, 0.00, 1.00)", "(0%, 0%, 0%, 100%)"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.colour)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Format(%+v) mismatch (-want +got):\n%s", tt.colour, diff)
			}
		})
	}
}

func TestFormatMatchesExamples(t *testing.T) {
	for _, ex := range Examples() {
		t.Run(ex.Name, func(t *testing.T) {
			got := Format(ex.Colour)
			if got.RGB.Forms[1] != ex.Input(NotationRGB) {
				t.Errorf("RGB tuple = %q, want %q", got.RGB.Forms[1], ex.Input(NotationRGB))
			}
			if got.HEX.Forms[0] != ex.Input(NotationHEX) {
				t.Errorf("HEX = %q, want %q", got.HEX.Forms[0], ex.Input(NotationHEX))
			}
			if got.DEC.Forms[0] != ex.Input(NotationDEC) {
				t.Errorf("DEC = %q, want %q", got.DEC.Forms[0], ex.Input(NotationDEC))
			}
			if got.CMYK.Forms[1] != ex.Input(NotationCMYK) {
				t.Errorf("CMYK = %q, want %q", got.CMYK.Forms[1], ex.Input(NotationCMYK))
			}
		})
	}
}

func TestFormatAs(t *testing.T) {
	for _, n := range Notations() {
		got, err := FormatAs(red, n)
		if err != nil {
			t.Fatalf("FormatAs(%s) unexpected error: %v", n, err)
		}
		want, _ := Format(red).Get(n)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FormatAs(%s) mismatch (-want +got):\n%s", n, diff)
		}
	}

	if _, err := FormatAs(red, Notation(9)); err == nil {
		t.Error("FormatAs with an unknown notation should fail")
	}
}

func TestFormatRoundsHueOf360ToZero(t *testing.T) {
	// Hue of (255, 0, 1) is 359.76 degrees.
	got := Format(RGB{R: 255, G: 0, B: 1}).HSBHSV.Forms[1]
	if !strings.HasPrefix(got, "(0, ") {
		t.Errorf("HSB/HSV tuple = %q, want hue 0", got)
	}
}

func TestRepresentationsAll(t *testing.T) {
	all := Format(blue).All()
	if len(all) != len(Notations()) {
		t.Fatalf("All() returned %d renderings, want %d", len(all), len(Notations()))
	}
	for i, n := range Notations() {
		if all[i].Notation != n {
			t.Errorf("All()[%d].Notation = %s, want %s", i, all[i].Notation, n)
		}
		if len(all[i].Forms) < 1 || len(all[i].Forms) > 3 {
			t.Errorf("%s has %d forms, want 1-3", n, len(all[i].Forms))
		}
	}
}

func TestRepresentationsJSON(t *testing.T) {
	data, err := json.MarshalIndent(Format(red), "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() error: %v", err)
	}

	var decoded Representations
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(Format(red), decoded); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(data), `"notation": "HSB/HSV"`) {
		t.Errorf("JSON should name notations, got:\n%s", data)
	}
}

func TestRoundTripHEXAndDEC(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 5 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				reps := Format(c)
				for _, form := range reps.HEX.Forms {
					got, err := ParseHEX(form)
					if err != nil || got != c {
						t.Fatalf("ParseHEX(%q) = %+v, %v; want %+v", form, got, err, c)
					}
				}
				got, err := ParseDEC(reps.DEC.Forms[0])
				if err != nil || got != c {
					t.Fatalf("ParseDEC(%q) = %+v, %v; want %+v", reps.DEC.Forms[0], got, err, c)
				}
				got, err = ParseRGB(reps.RGB.Forms[1])
				if err != nil || got != c {
					t.Fatalf("ParseRGB(%q) = %+v, %v; want %+v", reps.RGB.Forms[1], got, err, c)
				}
			}
		}
	}
}
