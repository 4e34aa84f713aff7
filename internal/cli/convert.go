package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jmylchreest/colourcalc/internal/colour"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	*rootOptions

	from   colour.Notation
	to     colour.Notation
	format outputFormat
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{rootOptions: root, format: defaultFormat()}

	cmd := &cobra.Command{
		Use:   "convert [value...]",
		Short: "Convert a colour into every notation",
		Long: `Convert a colour written in one notation into all supported notations.

The notation is given with --from; without it, colourcalc infers HEX, DEC,
RGB and CMYK from the input's shape. HSB/HSV and HSL tuples look alike, so
they always need --from. With no arguments, one colour is read per line from
standard input.

Notations:
  rgb      (R, G, B)              R, G, B in [0, 255]
  hex      0xRRGGBB or #RRGGBB    an AARRGGBB value drops its alpha
  dec      R*65536 + G*256 + B    in [0, 16777215]
  hsb/hsv  (H, S%, B%)            H in degrees, S and B in [0%, 100%]
  hsl      (H, S%, L%)            H in degrees, S and L in [0%, 100%]
  cmyk     (C, M, Y, K)           fractions in [0, 1], or percentages with %

Examples:
  # Convert a hex colour
  colourcalc convert '#FF0000'

  # Convert an HSL tuple
  colourcalc convert --from hsl '(0, 100%, 50%)'

  # Arguments are joined, so quoting is optional
  colourcalc convert 255, 0, 0

  # Only show the HSL forms
  colourcalc convert --to hsl 0x999999

  # Emit JSON
  colourcalc convert -f json 16711680

  # Convert many colours, one per line
  printf '#FFFFFF\n(153, 153, 153)\n' | colourcalc convert`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	if n, ok := defaultNotation(); ok {
		opts.from = n
	}
	fromFlag := cmd.Flags().VarPF(&opts.from, "from", "n", "input notation (rgb, hex, dec, hsb/hsv, hsl, cmyk; env: "+EnvFrom+")")
	fromFlag.DefValue = ""
	toFlag := cmd.Flags().VarPF(&opts.to, "to", "t", "only show this notation in text and table output")
	toFlag.DefValue = ""
	cmd.Flags().VarP(&opts.format, "format", "f", "output format (text, json, table; env: "+EnvFormat+")")

	return cmd
}

// explicitNotation reports whether the input notation was chosen by flag or env.
func (o *convertOptions) explicitNotation(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("from") {
		return true
	}
	_, ok := defaultNotation()
	return ok
}

// render collects the output settings, restricting output when --to is set.
func (o *convertOptions) render(cmd *cobra.Command) renderOptions {
	opts := renderOptions{format: o.format, preview: o.preview}
	if cmd.Flags().Changed("to") {
		to := o.to
		opts.only = &to
	}
	return opts
}

func (o *convertOptions) run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		conv, err := o.convert(cmd, strings.Join(args, " "))
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorIndicator(err, o.stderrColour(cmd)))
			// Already reported above.
			cmd.SilenceErrors = true
			return err
		}
		return writeConversion(cmd.OutOrStdout(), conv, o.render(cmd))
	}

	return o.runLines(cmd)
}

// runLines converts each non-blank line of standard input. A failed line is
// reported and the next line proceeds.
func (o *convertOptions) runLines(cmd *cobra.Command) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	total, failed, written := 0, 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++

		conv, err := o.convert(cmd, line)
		if err != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), errorIndicator(err, o.stderrColour(cmd)))
			continue
		}
		if written > 0 && o.format != formatJSON {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if err := writeConversion(cmd.OutOrStdout(), conv, o.render(cmd)); err != nil {
			return err
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if total == 0 {
		return fmt.Errorf("no input: pass a colour as an argument or on standard input")
	}
	if !o.quiet && total > 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Converted %d of %d colours\n", total-failed, total)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", failed, total)
	}
	return nil
}

// convert parses a single input, inferring the notation when none was given.
func (o *convertOptions) convert(cmd *cobra.Command, input string) (conversion, error) {
	n := o.from
	if !o.explicitNotation(cmd) {
		detected, err := colour.Detect(input)
		if err != nil {
			return conversion{}, err
		}
		n = detected
		o.logger.Debug("detected notation", "input", input, "notation", n.String())
	}

	c, err := colour.Parse(n, input)
	if err != nil {
		o.logger.Debug("parse failed", "notation", n.String(), "input", input, "error", err)
		return conversion{}, fmt.Errorf("invalid %s input: %w", n, err)
	}
	o.logger.Debug("parsed colour", "notation", n.String(), "rgb", c.String())

	return newConversion(input, n.String(), c), nil
}
