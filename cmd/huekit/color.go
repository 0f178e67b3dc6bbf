package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/format"
	"github.com/spf13/cobra"
)

var (
	flagTo      []string
	flagLevel   string
	flagSize    string
	flagKind    string
	flagResults int
	flagSlices  int
	flagAmount  float64
)

// Scheme kinds accepted by the scheme command.
const (
	kindComplement      = "complement"
	kindSplitComplement = "splitcomplement"
	kindTriad           = "triad"
	kindTetrad          = "tetrad"
	kindAnalogous       = "analogous"
	kindMonochromatic   = "monochromatic"
)

var schemeKinds = []string{
	kindComplement, kindSplitComplement, kindTriad, kindTetrad, kindAnalogous, kindMonochromatic,
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>...",
	Short: "Print colors in other notations",
	Long: `Print each color in the notations given with --to, one per line.
Without --to a color prints in the notation it was written in.`,
	Example: `  huekit convert "#ff0088" --to rgb --to hsl
  huekit convert red "hsv(120, 100%, 50%)" --to hex`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <color>",
	Short: "Show a color in every notation with its brightness and luminance",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <color> <color>",
	Short: "Print the WCAG contrast ratio of two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runContrast,
}

var schemeCmd = &cobra.Command{
	Use:   "scheme <color>",
	Short: "Print a color scheme built around a color",
	Long:  "Print a color scheme built around a color. Kinds: " + strings.Join(schemeKinds, ", ") + ".",
	Args:  cobra.ExactArgs(1),
	RunE:  runScheme,
}

var mixCmd = &cobra.Command{
	Use:   "mix <color> <color>",
	Short: "Mix two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runMix,
}

func init() {
	convertCmd.Flags().StringArrayVar(&flagTo, "to", nil, "output notation, e.g. hex, hex8, rgb, prgb, hsl, hsv, name (can be repeated)")
	contrastCmd.Flags().StringVar(&flagLevel, "level", huekit.LevelAA, "WCAG level: AA or AAA")
	contrastCmd.Flags().StringVar(&flagSize, "size", huekit.SizeSmall, "text size: small or large")
	schemeCmd.Flags().StringVar(&flagKind, "kind", kindComplement, "scheme kind")
	schemeCmd.Flags().IntVar(&flagResults, "results", 0, "number of colors for analogous and monochromatic schemes (0 for the default)")
	schemeCmd.Flags().IntVar(&flagSlices, "slices", 0, "color wheel slices for analogous schemes (0 for the default)")
	mixCmd.Flags().Float64Var(&flagAmount, "amount", huekit.DefaultMixAmount, "percentage of the second color, 0 to 100")

	rootCmd.AddCommand(convertCmd, inspectCmd, contrastCmd, schemeCmd, mixCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		c, err := parseColor(arg)
		if err != nil {
			return err
		}

		if len(flagTo) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), c.ToString())
			continue
		}
		for _, id := range flagTo {
			fmt.Fprintln(cmd.OutOrStdout(), c.ToString(strings.ToLower(id)))
		}
	}
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	c, err := parseColor(args[0])
	if err != nil {
		return err
	}

	name, ok := c.ToName()
	if !ok {
		name = "-"
	}
	tone := "light"
	if c.IsDark() {
		tone = "dark"
	}

	rows := [][2]string{
		{"format", c.Format()},
		{format.Hex, c.ToHexString(false)},
		{format.Hex8, c.ToHex8String(false)},
		{format.RGB, c.ToRgbString()},
		{format.PRGB, c.ToPercentageRgbString()},
		{format.HSL, c.ToHslString()},
		{format.HSV, c.ToHsvString()},
		{format.Name, name},
		{"alpha", strconv.FormatFloat(c.Alpha(), 'f', -1, 64)},
		{"brightness", strconv.FormatFloat(c.Brightness(), 'f', 1, 64)},
		{"luminance", strconv.FormatFloat(c.Luminance(), 'f', 4, 64)},
		{"tone", tone},
	}
	for _, row := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", row[0], row[1])
	}
	return nil
}

func runContrast(cmd *cobra.Command, args []string) error {
	a, err := parseColor(args[0])
	if err != nil {
		return err
	}
	b, err := parseColor(args[1])
	if err != nil {
		return err
	}

	params := huekit.WCAG2{Level: flagLevel, Size: flagSize}
	verdict := "fail"
	if huekit.IsReadable(a, b, params) {
		verdict = "pass"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1 %s %s %s\n",
		huekit.Readability(a, b), strings.ToUpper(flagLevel), strings.ToLower(flagSize), verdict)
	return nil
}

func runScheme(cmd *cobra.Command, args []string) error {
	c, err := parseColor(args[0])
	if err != nil {
		return err
	}

	var colors []*huekit.Color
	switch strings.ToLower(flagKind) {
	case kindComplement:
		colors = []*huekit.Color{c, c.Complement()}
	case kindSplitComplement:
		colors = c.SplitComplement()
	case kindTriad:
		colors = c.Triad()
	case kindTetrad:
		colors = c.Tetrad()
	case kindAnalogous:
		colors = c.Analogous(flagResults, flagSlices)
	case kindMonochromatic:
		colors = c.Monochromatic(flagResults)
	default:
		return fmt.Errorf("unknown scheme kind %q, want one of %s", flagKind, strings.Join(schemeKinds, ", "))
	}

	for _, sc := range colors {
		fmt.Fprintln(cmd.OutOrStdout(), sc.ToString())
	}
	return nil
}

func runMix(cmd *cobra.Command, args []string) error {
	a, err := parseColor(args[0])
	if err != nil {
		return err
	}
	b, err := parseColor(args[1])
	if err != nil {
		return err
	}
	if flagAmount < 0 || flagAmount > 100 {
		return fmt.Errorf("--amount must be between 0 and 100, got %g", flagAmount)
	}

	mixed := huekit.Mix(a, b, flagAmount)
	// Print in the first color's notation.
	out := huekit.New(format.RGBObject(mixed.ToRgb()), huekit.WithRegistry(registry), huekit.WithFormat(a.Format()))
	fmt.Fprintln(cmd.OutOrStdout(), out.ToString())
	return nil
}
