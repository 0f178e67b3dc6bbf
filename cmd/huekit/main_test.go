package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of cmd and its subcommands to its default
// so consecutive executions do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.hcl", "options {\n  upper_case_hex = true\n}\n")
	refs := writeFile(t, dir, "refs.hcl", "palette {\n  brand = \"#ff0088\"\n}\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"convert to several", []string{"convert", "#ff0088", "--to", "rgb", "--to", "hsl"}, "rgb(255, 0, 136)\nhsl(328, 100%, 50%)\n"},
		{"convert keeps notation", []string{"convert", "red", "hsv(120, 100%, 50%)"}, "red\nhsv(120, 100%, 50%)\n"},
		{"convert upper case format id", []string{"convert", "#ff0088", "--to", "RGB"}, "rgb(255, 0, 136)\n"},
		{"short hex", []string{"convert", "#ff0088", "--short-hex", "--to", "hex"}, "#f08\n"},
		{"upper hex", []string{"convert", "#ff0088", "--upper-hex", "--to", "hex"}, "#FF0088\n"},
		{"config file", []string{"--config", cfg, "convert", "#ff0088", "--to", "hex"}, "#FF0088\n"},
		{"flag overrides config", []string{"--config", cfg, "--upper-hex=false", "convert", "#ff0088", "--to", "hex"}, "#ff0088\n"},
		{"palette reference input", []string{"--refs", refs, "convert", "palette.brand", "--to", "rgb"}, "rgb(255, 0, 136)\n"},
		{"palette reference output", []string{"--refs", refs, "convert", "#ff0088", "--to", "palette"}, "palette.brand\n"},
		{"contrast", []string{"contrast", "black", "white"}, "21.00:1 AA small pass\n"},
		{"contrast level and size", []string{"contrast", "#777777", "white", "--level", "aaa", "--size", "large"}, "4.48:1 AAA large fail\n"},
		{"triad", []string{"scheme", "#ff0000", "--kind", "triad"}, "#ff0000\n#00ff00\n#0000ff\n"},
		{"complement", []string{"scheme", "#ff0000"}, "#ff0000\n#00ffff\n"},
		{"monochromatic", []string{"scheme", "#ff0000", "--kind", "monochromatic", "--results", "2"}, "#ff0000\n#800000\n"},
		{"mix", []string{"mix", "#000", "#fff"}, "#808080\n"},
		{"mix amount", []string{"mix", "#000000", "#ffffff", "--amount", "0"}, "#000000\n"},
		{"mix keeps first notation", []string{"mix", "rgb(0, 0, 0)", "#fff", "--amount", "100"}, "rgb(255, 255, 255)\n"},
		{"version", []string{"version"}, "dev\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("huekit %s: %v", strings.Join(tt.args, " "), err)
			}
			if got != tt.want {
				t.Errorf("huekit %s = %q, want %q", strings.Join(tt.args, " "), got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid color", []string{"convert", "nope"}, `invalid color "nope"`},
		{"bad alpha format", []string{"--alpha-format", "cmyk", "convert", "red"}, "--alpha-format"},
		{"missing config", []string{"--config", "does-not-exist.hcl", "convert", "red"}, "reading config file"},
		{"unknown scheme", []string{"scheme", "red", "--kind", "nope"}, "unknown scheme kind"},
		{"mix amount out of range", []string{"mix", "red", "blue", "--amount", "150"}, "--amount"},
		{"missing palette", []string{"palette", "does-not-exist.hcl"}, "reading palette file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("huekit %s: expected error", strings.Join(tt.args, " "))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	got, err := execute(t, "inspect", "red")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"format      name\n",
		"hex         #ff0000\n",
		"hex8        #ff0000\n",
		"rgb         rgb(255, 0, 0)\n",
		"prgb        rgb(100%, 0%, 0%)\n",
		"hsl         hsl(0, 100%, 50%)\n",
		"name        red\n",
		"alpha       1\n",
		"luminance   0.2126\n",
		"tone        dark\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("inspect output missing %q:\n%s", want, got)
		}
	}
}

const testPalette = `meta {
  name = "Test"
}

palette {
  brand = "#ff0088"
  surface {
    color = "#1e1e2e"
    low   = "#181825"
  }
  accents {
    pink = "#f5c2e7"
  }
}
`

func TestPaletteTree(t *testing.T) {
	path := writeFile(t, t.TempDir(), "palette.hcl", testPalette)

	got, err := execute(t, "palette", path)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Test\n", "[#ff0088]  brand", "[#1e1e2e]  surface", "[#181825]  low", "accents\n", "[#f5c2e7]  pink"} {
		if !strings.Contains(got, want) {
			t.Errorf("palette output missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "palette.hcl", testPalette)
	templates := filepath.Join(dir, "templates")
	if err := os.Mkdir(templates, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, templates, "app.conf.tmpl", `bg={{ hex "surface" }} fg={{ rgb "brand" }}`)
	out := filepath.Join(dir, "out")

	if _, err := execute(t, "generate", "--palette", path, "--templates", templates, "--out", out); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(out, "app.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "bg=#1e1e2e fg=rgb(255, 0, 136)"; string(got) != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestFmt(t *testing.T) {
	const unformatted = "palette {\nbrand=\"#FF0088\"\n}\n"
	const formatted = "palette {\n  brand = \"#ff0088\"\n}\n"

	dir := t.TempDir()
	path := writeFile(t, dir, "palette.hcl", unformatted)

	out, err := execute(t, "fmt", "--check", path)
	if err != errNotFormatted {
		t.Fatalf("fmt --check error = %v, want %v", err, errNotFormatted)
	}
	if out != path+"\n" {
		t.Errorf("fmt --check printed %q, want the path", out)
	}
	if data, _ := os.ReadFile(path); string(data) != unformatted {
		t.Error("fmt --check must not write")
	}

	if _, err := execute(t, "fmt", path); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(path); string(data) != formatted {
		t.Errorf("formatted file = %q, want %q", data, formatted)
	}

	if out, err := execute(t, "fmt", "--check", path); err != nil || out != "" {
		t.Errorf("fmt --check on a formatted file = %q, %v", out, err)
	}
}

func TestFmtUpperHexOption(t *testing.T) {
	path := writeFile(t, t.TempDir(), "palette.hcl", "options {\n  upper_case_hex = true\n}\n\npalette {\n  brand = \"#ff0088\"\n}\n")

	if _, err := execute(t, "fmt", path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"#FF0088"`) {
		t.Errorf("expected upper case hex from the file's options:\n%s", data)
	}
}

func TestFmtInvalidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.hcl", "palette {\n  brand = \n")

	out, err := execute(t, "fmt", path)
	if err != errFmtFailed {
		t.Fatalf("fmt error = %v, want %v", err, errFmtFailed)
	}
	if !strings.Contains(out, "Error formatting") {
		t.Errorf("expected an error message, got %q", out)
	}
}
