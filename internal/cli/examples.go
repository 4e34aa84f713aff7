package cli

import (
	"fmt"

	"github.com/jmylchreest/colourcalc/internal/colour"
	"github.com/spf13/cobra"
)

func newExamplesCmd(opts *rootOptions) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Show worked examples in every notation",
		Long: `Show a table of well-known colours written in every notation.

Any cell can be passed to 'colourcalc convert --from <notation>'. With
--verify, every cell is parsed and checked against its colour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verify {
				return verifyExamples(cmd, opts)
			}
			return runExamples(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "parse every example and report mismatches")

	return cmd
}

func runExamples(cmd *cobra.Command, opts *rootOptions) error {
	headers := []string{"NAME"}
	if opts.preview {
		headers = append([]string{""}, headers...)
	}
	for _, n := range colour.Notations() {
		headers = append(headers, n.String())
	}

	table := NewTable(headers)
	for _, ex := range colour.Examples() {
		row := []string{ex.Name}
		if opts.preview {
			row = append([]string{colour.ColourPreview(ex.Colour, 4)}, row...)
		}
		for _, n := range colour.Notations() {
			row = append(row, ex.Input(n))
		}
		table.AddRow(row)
	}

	if !opts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "EXAMPLES")
		fmt.Fprintln(cmd.OutOrStdout())
	}
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

// verifyExamples parses every example cell and compares it with the colour
// the example names.
func verifyExamples(cmd *cobra.Command, opts *rootOptions) error {
	failures := 0
	for _, ex := range colour.Examples() {
		for _, n := range colour.Notations() {
			got, err := colour.Parse(n, ex.Input(n))
			switch {
			case err != nil:
				failures++
				fmt.Fprintln(cmd.ErrOrStderr(), errorIndicator(err, opts.stderrColour(cmd)))
			case got != ex.Colour:
				failures++
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s %s %q parsed to %s, want %s\n", ex.Name, n, ex.Input(n), got, ex.Colour)
			default:
				opts.logger.Debug("example verified", "name", ex.Name, "notation", n.String())
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d example conversions failed", failures)
	}
	if !opts.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ all %d example conversions verified\n", len(colour.Examples())*len(colour.Notations()))
	}
	return nil
}

func newNotationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "notations",
		Short: "List supported notations and their constraints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"NOTATION", "DEFINITION", "CONSTRAINTS"})
			table.SetColumnMaxWidth(2, 40)
			for _, def := range colour.Definitions() {
				table.AddRow([]string{def.Notation.String(), def.Shape, def.Constraints})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}
