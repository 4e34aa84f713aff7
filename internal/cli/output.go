package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmylchreest/colourcalc/internal/colour"
	"github.com/spf13/pflag"
)

// outputFormat selects how conversion results are written.
type outputFormat string

const (
	formatText  outputFormat = "text"
	formatJSON  outputFormat = "json"
	formatTable outputFormat = "table"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON, formatTable:
		*f = v
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, table)", s)
	}
}

func (f *outputFormat) Type() string { return "format" }

// defaultFormat returns the format named by EnvFormat, falling back to text.
func defaultFormat() outputFormat {
	f := formatText
	if env := os.Getenv(EnvFormat); env != "" {
		// validateEnv reports an invalid value before any command runs.
		_ = f.Set(env)
	}
	return f
}

// conversion is one input and its canonical colour.
type conversion struct {
	Input           string                 `json:"input"`
	Notation        string                 `json:"notation"`
	Colour          colour.RGB             `json:"colour"`
	Representations colour.Representations `json:"representations"`
}

func newConversion(input, source string, c colour.RGB) conversion {
	return conversion{
		Input:           input,
		Notation:        source,
		Colour:          c,
		Representations: colour.Format(c),
	}
}

// renderOptions controls how a conversion is written.
type renderOptions struct {
	format  outputFormat
	preview bool
	// only restricts text and table output to one notation when set.
	only *colour.Notation
}

// renderings returns the renderings to display, in display order.
func (conv conversion) renderings(only *colour.Notation) []colour.Rendering {
	if only != nil {
		if r, ok := conv.Representations.Get(*only); ok {
			return []colour.Rendering{r}
		}
	}
	return conv.Representations.All()
}

// writeConversion renders a conversion in the requested format. JSON always
// carries every representation.
func writeConversion(w io.Writer, conv conversion, opts renderOptions) error {
	switch opts.format {
	case formatJSON:
		data, err := json.MarshalIndent(conv, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatTable:
		_, err := io.WriteString(w, conversionTable(conv, opts).Render())
		return err
	default:
		_, err := io.WriteString(w, conversionText(conv, opts))
		return err
	}
}

// conversionText renders one line per notation, e.g.
//
//	In HEX:     0xFF0000  #FF0000  FF0000
func conversionText(conv conversion, opts renderOptions) string {
	var sb strings.Builder
	if opts.preview {
		sb.WriteString(colour.ColourPreviewWithText(conv.Colour, conv.Colour.Hex(), 24))
		sb.WriteString("\n")
	}
	for _, r := range conv.renderings(opts.only) {
		fmt.Fprintf(&sb, "%-12s%s\n", "In "+r.Notation.String()+":", strings.Join(r.Forms, "  "))
	}
	return sb.String()
}

func conversionTable(conv conversion, opts renderOptions) *Table {
	headers := []string{"NOTATION", "LABELLED", "TUPLE", "PLAIN"}
	if opts.preview {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	for _, r := range conv.renderings(opts.only) {
		row := append([]string{r.Notation.String()}, r.Forms...)
		if opts.preview {
			row = append([]string{colour.ColourPreview(conv.Colour, 4)}, row...)
		}
		table.AddRow(row)
	}
	return table
}

// errorIndicator renders a failed parse for display, naming the failure kind.
func errorIndicator(err error, colourise bool) string {
	kind := "invalid input"
	switch {
	case errors.Is(err, colour.ErrOutOfRange):
		kind = "out of range"
	case errors.Is(err, colour.ErrMalformedInput):
		kind = "malformed input"
	}
	msg := fmt.Sprintf("✗ %s: %v", kind, err)
	return colour.ColourString(colour.RGB{R: 220, G: 50, B: 47}, msg, colourise)
}
