package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/huekit/internal/config"
	"github.com/jsvensson/huekit/internal/engine"
	"github.com/jsvensson/huekit/internal/hclfmt"
	"github.com/jsvensson/huekit/internal/palette"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

var (
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagApp       []string
	flagCheck     bool
)

var paletteCmd = &cobra.Command{
	Use:   "palette <file>",
	Short: "Print an evaluated palette file as a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render templates against a palette file",
	RunE:  runGenerate,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	generateCmd.Flags().StringVar(&flagPalette, "palette", "palette.hcl", "path to palette HCL file")
	generateCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(paletteCmd, generateCmd, fmtCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	f, err := palette.Load(args[0])
	if err != nil {
		return err
	}

	title := args[0]
	if f.Meta.Name != "" {
		title = f.Meta.Name
	}
	tree := treeprint.NewWithRoot(title)
	addNodes(tree, f.Palette)

	fmt.Fprint(cmd.OutOrStdout(), tree.String())
	return nil
}

// addNodes adds the children of n to tree, groups as branches.
func addNodes(tree treeprint.Tree, n *palette.Node) {
	for _, child := range n.Children {
		if !child.IsGroup() {
			tree.AddMetaNode(child.Color.ToString(), child.Name)
			continue
		}

		var branch treeprint.Tree
		if child.Color != nil {
			branch = tree.AddMetaBranch(child.Color.ToString(), child.Name)
		} else {
			branch = tree.AddBranch(child.Name)
		}
		addNodes(branch, child)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	f, err := palette.Load(flagPalette)
	if err != nil {
		return err
	}

	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Apps:         flagApp,
	}

	if err := e.Run(f); err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated files in %s\n", flagOut)
	return nil
}

// formatOptions reads the formatting options of a palette file: its own
// options block, overridden by --upper-hex.
func formatOptions(cmd *cobra.Command, path string, src []byte) hclfmt.Options {
	var opts hclfmt.Options
	if o, diags := config.Decode(path, src); !diags.HasErrors() && o.UpperCaseHex != nil {
		opts.UpperCaseHex = *o.UpperCaseHex
	}
	if cmd.Flags().Changed("upper-hex") {
		opts.UpperCaseHex = flagUpperHex
	}
	return opts
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		formatted, diags := hclfmt.File(path, data, formatOptions(cmd, path, data))
		if diags.HasErrors() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, diags)
			hasErrors = true
			continue
		}

		if string(formatted) == string(data) {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors {
		return errFmtFailed
	}
	if flagCheck && needsFormatting {
		return errNotFormatted
	}
	return nil
}
