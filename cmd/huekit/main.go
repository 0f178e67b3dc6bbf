package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/config"
	"github.com/jsvensson/huekit/internal/palette"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig      string
	flagAlphaFormat string
	flagShortHex    bool
	flagUpperHex    bool
	flagRefs        string
	flagVerbose     int
	version         = "dev" // Injected at build time via ldflags
)

var (
	errFmtFailed    = errors.New("some files could not be formatted")
	errNotFormatted = errors.New("some files are not formatted")
)

// registry is the format registry colour arguments resolve and print
// through. It is built from the global flags before any command runs.
var registry = format.Default()

var rootCmd = &cobra.Command{
	Use:           "huekit",
	Short:         "Parse, convert, inspect and combine colors",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		commonlog.Configure(flagVerbose, nil)

		reg, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		registry = reg
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "HCL file with an options block")
	pf.StringVar(&flagAlphaFormat, "alpha-format", "", `how translucent hex colors print: "rgb" or "hex"`)
	pf.BoolVar(&flagShortHex, "short-hex", false, "print 3 and 4 digit hex where possible")
	pf.BoolVar(&flagUpperHex, "upper-hex", false, "print hex digits in upper case")
	pf.StringVar(&flagRefs, "refs", "", "palette file whose entries resolve as palette.<path> colors")
	pf.CountVarP(&flagVerbose, "verbose", "v", "log verbosity (repeat for more)")

	rootCmd.AddCommand(versionCmd)
}

// loadRegistry clones the default registry and applies the config file
// options, then the options given as flags.
func loadRegistry(cmd *cobra.Command) (*format.Registry, error) {
	var opts config.Options
	if flagConfig != "" {
		o, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		opts = o
	}

	flags := cmd.Flags()
	var override config.Options
	if flags.Changed("alpha-format") {
		if flagAlphaFormat != format.AlphaRGB && flagAlphaFormat != format.AlphaHex {
			return nil, fmt.Errorf("--alpha-format must be %q or %q, got %q", format.AlphaRGB, format.AlphaHex, flagAlphaFormat)
		}
		override.AlphaFormat = &flagAlphaFormat
	}
	if flags.Changed("short-hex") {
		override.ShortHex = &flagShortHex
	}
	if flags.Changed("upper-hex") {
		override.UpperCaseHex = &flagUpperHex
	}
	opts = opts.Merge(override)

	reg := format.Default().Clone()
	reg.SetDefaults(opts.FormatOptions()...)

	if flagRefs != "" {
		f, err := palette.Load(flagRefs)
		if err != nil {
			return nil, err
		}
		if err := f.Register(reg); err != nil {
			return nil, fmt.Errorf("registering palette references: %w", err)
		}
	}
	return reg, nil
}

// parseColor resolves a color argument through the registry.
func parseColor(s string) (*huekit.Color, error) {
	c := huekit.New(s, huekit.WithRegistry(registry))
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid color %q: %w", s, c.Err())
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
