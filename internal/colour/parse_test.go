package colour

import (
	"errors"
	"testing"
)

var (
	red   = RGB{R: 255, G: 0, B: 0}
	green = RGB{R: 0, G: 255, B: 0}
	blue  = RGB{R: 0, G: 0, B: 255}
	grey  = RGB{R: 153, G: 153, B: 153}
	black = RGB{}
	white = RGB{R: 255, G: 255, B: 255}
)

type parseCase struct {
	name    string
	input   string
	want    RGB
	wantErr error
}

func runParseCases(t *testing.T, parse func(string) (RGB, error), tests []parseCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				if got != (RGB{}) {
					t.Errorf("parse(%q) returned %+v alongside an error, want zero value", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRGB(t *testing.T) {
	runParseCases(t, ParseRGB, []parseCase{
		{name: "tuple", input: "(255, 0, 0)", want: red},
		{name: "bare", input: "153,153,153", want: grey},
		{name: "extra whitespace", input: " ( 12 , 34 ,\t56 ) ", want: RGB{R: 12, G: 34, B: 56}},
		{name: "square brackets", input: "[0, 0, 255]", want: blue},
		{name: "channel above 255", input: "(256, 0, 0)", wantErr: ErrOutOfRange},
		{name: "negative channel", input: "(0, -1, 0)", wantErr: ErrOutOfRange},
		{name: "huge channel", input: "(99999999999999999999, 0, 0)", wantErr: ErrOutOfRange},
		{name: "too few fields", input: "(1, 2)", wantErr: ErrMalformedInput},
		{name: "too many fields", input: "(1, 2, 3, 4)", wantErr: ErrMalformedInput},
		{name: "empty field", input: "(1, , 3)", wantErr: ErrMalformedInput},
		{name: "non-numeric", input: "(a, 2, 3)", wantErr: ErrMalformedInput},
		{name: "fractional", input: "(1.5, 2, 3)", wantErr: ErrMalformedInput},
		{name: "empty", input: "", wantErr: ErrMalformedInput},
	})
}

func TestParseHEX(t *testing.T) {
	runParseCases(t, ParseHEX, []parseCase{
		{name: "0x prefix", input: "0xFF0000", want: red},
		{name: "0X prefix", input: "0X00ff00", want: green},
		{name: "hash prefix lowercase", input: "#0000ff", want: blue},
		{name: "bare", input: "999999", want: grey},
		{name: "surrounding whitespace", input: "  #123456 ", want: RGB{R: 0x12, G: 0x34, B: 0x56}},
		{name: "alpha dropped", input: "#80FF0000", want: red},
		{name: "alpha dropped 0x", input: "0x00FFFFFF", want: white},
		{name: "inner whitespace", input: "# FF 00 00", want: red},
		{name: "inner whitespace 0x", input: "0x 00\tFF00", want: green},
		{name: "invalid digits", input: "#ZZZZZZ", wantErr: ErrMalformedInput},
		{name: "invalid alpha digits", input: "#ZZFF0000", wantErr: ErrMalformedInput},
		{name: "invalid alpha digit 0x", input: "0xG0FF0000", wantErr: ErrMalformedInput},
		{name: "signed eight digits", input: "-1FF0000", wantErr: ErrMalformedInput},
		{name: "short form", input: "#FFF", wantErr: ErrMalformedInput},
		{name: "seven digits", input: "#FFFFFFF", wantErr: ErrMalformedInput},
		{name: "signed", input: "+FFFFF", wantErr: ErrMalformedInput},
		{name: "empty", input: "", wantErr: ErrMalformedInput},
	})
}

func TestParseDEC(t *testing.T) {
	runParseCases(t, ParseDEC, []parseCase{
		{name: "red", input: "16711680", want: red},
		{name: "grey", input: "10066329", want: grey},
		{name: "blue", input: "255", want: blue},
		{name: "black", input: "0", want: black},
		{name: "white", input: "16777215", want: white},
		{name: "whitespace", input: " 65280\n", want: green},
		{name: "above 24 bits", input: "16777216", wantErr: ErrOutOfRange},
		{name: "negative", input: "-1", wantErr: ErrOutOfRange},
		{name: "overflow", input: "999999999999999999999999", wantErr: ErrOutOfRange},
		{name: "not a number", input: "12ab", wantErr: ErrMalformedInput},
		{name: "empty", input: "  ", wantErr: ErrMalformedInput},
	})
}

func TestParseHSBHSV(t *testing.T) {
	runParseCases(t, ParseHSBHSV, []parseCase{
		{name: "red", input: "(0, 100%, 100%)", want: red},
		{name: "red without percent", input: "(0, 100, 100)", want: red},
		{name: "green with degree sign", input: "(120°, 100%, 100%)", want: green},
		{name: "blue", input: "(240, 100, 100)", want: blue},
		{name: "grey", input: "(0, 0%, 60%)", want: grey},
		{name: "full turn", input: "(360, 100%, 100%)", want: red},
		{name: "negative hue", input: "(-240, 100%, 100%)", want: green},
		{name: "many turns", input: "(3600240, 100%, 100%)", want: blue},
		{name: "black", input: "(200, 50%, 0%)", want: black},
		{name: "saturation above 100", input: "(0, 101%, 50%)", wantErr: ErrOutOfRange},
		{name: "negative brightness", input: "(0, 50%, -5%)", wantErr: ErrOutOfRange},
		{name: "nan hue", input: "(NaN, 50%, 50%)", wantErr: ErrMalformedInput},
		{name: "infinite hue", input: "(Inf, 50%, 50%)", wantErr: ErrMalformedInput},
		{name: "two fields", input: "(0, 50%)", wantErr: ErrMalformedInput},
	})
}

func TestParseHSL(t *testing.T) {
	runParseCases(t, ParseHSL, []parseCase{
		{name: "red", input: "(0, 100%, 50%)", want: red},
		{name: "green", input: "(120°, 100%, 50%)", want: green},
		{name: "blue", input: "(240, 100, 50)", want: blue},
		{name: "grey", input: "(0, 0%, 60%)", want: grey},
		{name: "orange", input: "(30, 100%, 50%)", want: RGB{R: 255, G: 128, B: 0}},
		{name: "magenta sector", input: "(300, 100%, 50%)", want: RGB{R: 255, G: 0, B: 255}},
		{name: "negative hue", input: "(-120, 100%, 50%)", want: blue},
		{name: "zero lightness", input: "(123, 77%, 0%)", want: black},
		{name: "full lightness", input: "(200, 50%, 100%)", want: white},
		{name: "lightness above 100", input: "(0, 50%, 101%)", wantErr: ErrOutOfRange},
		{name: "garbage", input: "(red, 50%, 50%)", wantErr: ErrMalformedInput},
		{name: "four fields", input: "(0, 50%, 50%, 1)", wantErr: ErrMalformedInput},
	})
}

func TestParseCMYK(t *testing.T) {
	runParseCases(t, ParseCMYK, []parseCase{
		{name: "red fractions", input: "(0.00, 1.00, 1.00, 0.00)", want: red},
		{name: "red percentages", input: "(0%, 100%, 100%, 0%)", want: red},
		{name: "green", input: "(1, 0, 1, 0)", want: green},
		{name: "grey", input: "(0.00, 0.00, 0.00, 0.40)", want: grey},
		{name: "grey percent key", input: "(0, 0, 0, 40%)", want: grey},
		{name: "black", input: "(0, 0, 0, 1)", want: black},
		{name: "black regardless of inks", input: "(0.3, 0.6, 0.9, 1)", want: black},
		{name: "fraction above 1", input: "(1.5, 0, 0, 0)", wantErr: ErrOutOfRange},
		{name: "percentage above 100", input: "(150%, 0, 0, 0)", wantErr: ErrOutOfRange},
		{name: "negative", input: "(0, -0.1, 0, 0)", wantErr: ErrOutOfRange},
		{name: "three fields", input: "(0, 0, 0)", wantErr: ErrMalformedInput},
		{name: "non-numeric", input: "(0, 0, x, 0)", wantErr: ErrMalformedInput},
	})
}

func TestParseDispatch(t *testing.T) {
	for _, ex := range Examples() {
		for _, n := range Notations() {
			t.Run(ex.Name+"/"+n.String(), func(t *testing.T) {
				got, err := Parse(n, ex.Input(n))
				if err != nil {
					t.Fatalf("Parse(%s, %q) unexpected error: %v", n, ex.Input(n), err)
				}
				if got != ex.Colour {
					t.Errorf("Parse(%s, %q) = %+v, want %+v", n, ex.Input(n), got, ex.Colour)
				}
			})
		}
	}
}

func TestParseInvalidNotation(t *testing.T) {
	if _, err := Parse(Notation(42), "(0, 0, 0)"); err == nil {
		t.Error("Parse with an unknown notation should fail")
	}
}

func TestParseErrorDetail(t *testing.T) {
	_, err := ParseRGB("(256, 0, 0)")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Notation != NotationRGB {
		t.Errorf("Notation = %s, want RGB", perr.Notation)
	}
	if perr.Field != "red" {
		t.Errorf("Field = %q, want %q", perr.Field, "red")
	}
	if perr.Input != "(256, 0, 0)" {
		t.Errorf("Input = %q", perr.Input)
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Error("out-of-range error should not match ErrMalformedInput")
	}
}
