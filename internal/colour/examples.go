package colour

// Example is a worked conversion: one colour written in every notation.
type Example struct {
	Name   string
	Colour RGB
	// Inputs holds, per notation in display order, text that parses to Colour.
	Inputs [6]string
}

// Input returns the example text for notation n.
func (e Example) Input(n Notation) string {
	if !n.Valid() {
		return ""
	}
	return e.Inputs[n]
}

var examples = [...]Example{
	{
		Name:   "white",
		Colour: RGB{R: 255, G: 255, B: 255},
		Inputs: [6]string{"(255, 255, 255)", "0xFFFFFF", "16777215", "(0, 0, 100)", "(0, 0, 100)", "(0.00, 0.00, 0.00, 0.00)"},
	},
	{
		Name:   "red",
		Colour: RGB{R: 255, G: 0, B: 0},
		Inputs: [6]string{"(255, 0, 0)", "0xFF0000", "16711680", "(0, 100, 100)", "(0, 100, 50)", "(0.00, 1.00, 1.00, 0.00)"},
	},
	{
		Name:   "green",
		Colour: RGB{R: 0, G: 255, B: 0},
		Inputs: [6]string{"(0, 255, 0)", "0x00FF00", "65280", "(120, 100, 100)", "(120, 100, 50)", "(1.00, 0.00, 1.00, 0.00)"},
	},
	{
		Name:   "blue",
		Colour: RGB{R: 0, G: 0, B: 255},
		Inputs: [6]string{"(0, 0, 255)", "0x0000FF", "255", "(240, 100, 100)", "(240, 100, 50)", "(1.00, 1.00, 0.00, 0.00)"},
	},
	{
		Name:   "grey",
		Colour: RGB{R: 153, G: 153, B: 153},
		Inputs: [6]string{"(153, 153, 153)", "0x999999", "10066329", "(0, 0, 60)", "(0, 0, 60)", "(0.00, 0.00, 0.00, 0.40)"},
	},
}

// Examples returns the built-in worked examples.
func Examples() []Example {
	out := make([]Example, len(examples))
	copy(out, examples[:])
	return out
}

// Definition documents the shape and constraints of a notation.
type Definition struct {
	Notation    Notation
	Shape       string
	Constraints string
}

var definitions = [...]Definition{
	NotationRGB:    {NotationRGB, "(Red, Green, Blue)", "R, G, B ∈ [0, 255]"},
	NotationHEX:    {NotationHEX, "hexadecimal 0xRRGGBB", "R, G, B ∈ [0, 9]∪[A, F]"},
	NotationDEC:    {NotationDEC, "decimal number", "DEC = R * 65536 + 256 * G + B"},
	NotationHSBHSV: {NotationHSBHSV, "(Hue, Saturation, Brightness/Value)", "H ∈ [0°, 360°), S, B, V ∈ [0%, 100%]"},
	NotationHSL:    {NotationHSL, "(Hue, Saturation, Lightness)", "H ∈ [0°, 360°), S, L ∈ [0%, 100%]"},
	NotationCMYK:   {NotationCMYK, "(Cyan, Magenta, Yellow, black Key)", "C, M, Y, K ∈ [0.00, 1.00] or [0%, 100%]"},
}

// Definitions returns the definition of every notation in display order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions[:])
	return out
}
