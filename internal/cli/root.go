// Package cli provides the command-line interface for colourcalc.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/colourcalc/internal/colour"
	"github.com/jmylchreest/colourcalc/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Environment variables that provide defaults for flags.
const (
	EnvFrom    = "COLOURCALC_FROM"
	EnvFormat  = "COLOURCALC_FORMAT"
	EnvNoColor = "NO_COLOR"
)

// rootOptions holds state shared by every subcommand.
type rootOptions struct {
	verbose  bool
	quiet    bool
	noColour bool
	preview  bool

	logger hclog.Logger
}

// NewRootCmd builds a fresh command tree. Each call returns independent
// commands and flag state, so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "colourcalc",
		Short: "Convert colours between RGB, HEX, DEC, HSB/HSV, HSL and CMYK",
		Long: `colourcalc parses a colour written in one notation and shows it in every
supported notation at once: RGB, HEX, DEC, HSB/HSV, HSL and CMYK.

Every conversion goes through an 8-bit-per-channel RGB value, so any notation
can be converted to any other.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", os.Getenv(EnvNoColor) != "", "disable ANSI colour output (env: "+EnvNoColor+")")
	rootCmd.PersistentFlags().BoolVar(&opts.preview, "preview", false, "show colour swatches (default: on when writing to a terminal)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newExamplesCmd(opts))
	rootCmd.AddCommand(newNotationsCmd(opts))
	rootCmd.AddCommand(newSampleCmd(opts))

	return rootCmd
}

// init resolves defaults that depend on the environment and builds the logger.
func (o *rootOptions) init(cmd *cobra.Command) error {
	if err := validateEnv(); err != nil {
		return err
	}
	if o.verbose && o.quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	if !cmd.Flags().Changed("preview") {
		o.preview = isTerminal(cmd.OutOrStdout())
	}
	if o.noColour {
		o.preview = false
	}

	o.logger = newLogger(cmd.ErrOrStderr(), o.verbose)
	o.logger.Debug("options resolved", "preview", o.preview, "no_colour", o.noColour)
	return nil
}

// stderrColour reports whether ANSI escapes may be written to stderr.
func (o *rootOptions) stderrColour(cmd *cobra.Command) bool {
	return !o.noColour && isTerminal(cmd.ErrOrStderr())
}

// newLogger configures an hclog logger: debug output to w when verbose,
// otherwise discarded.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colourcalc",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourcalc",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// validateEnv rejects environment defaults that name no known notation or
// output format.
func validateEnv() error {
	if name := os.Getenv(EnvFrom); name != "" {
		if _, err := colour.ParseNotation(name); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFrom, err)
		}
	}
	if name := os.Getenv(EnvFormat); name != "" {
		var f outputFormat
		if err := f.Set(name); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFormat, err)
		}
	}
	return nil
}

// defaultNotation returns the notation named by EnvFrom, if any. Invalid
// values are reported by validateEnv.
func defaultNotation() (colour.Notation, bool) {
	name := os.Getenv(EnvFrom)
	if name == "" {
		return 0, false
	}
	n, err := colour.ParseNotation(name)
	if err != nil {
		return 0, false
	}
	return n, true
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
