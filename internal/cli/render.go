// Package cli provides template rendering commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/placeholder"
)

var (
	renderFile string
	checkFile  string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(darkenCmd)
	rootCmd.AddCommand(checkCmd)

	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "read the template from a file (- for stdin)")
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "template file to check (- for stdin)")
}

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Resolve theme placeholders in a style template",
	Long: `Resolve theme.<key> and theme.<key>[<factor>] placeholders against the active theme.

Examples:
  themekit render 'background: theme.background; border-color: theme.border[300];'
  themekit render --theme light --file widget.qss`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := readTemplate(renderFile, args)
		if err != nil {
			return err
		}

		a, err := newApp(GetConfig(), true)
		if err != nil {
			return err
		}

		out, err := placeholder.Resolve(template, a.registry.ResolveAttribute)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			active, _ := a.registry.ActiveTheme()
			return WriteOutput(os.Stdout, map[string]string{
				"theme":  active.Name(),
				"output": out,
			})
		}

		fmt.Fprint(os.Stdout, out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(os.Stdout)
		}
		return nil
	},
}

var darkenCmd = &cobra.Command{
	Use:   "darken <color> [factor]",
	Short: "Darken a color by parts per thousand",
	Long:  "Darken a #rrggbb color. Each channel is scaled by (1000-factor)/1000 and rounded down. The default factor is 500.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		factor := color.DefaultDarkenFactor
		if len(args) == 2 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid factor %q: %w", args[1], err)
			}
			factor = parsed
		}

		out, err := color.Darken(args[0], factor)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, map[string]any{
				"input":  args[0],
				"factor": factor,
				"output": out,
			})
		}
		fmt.Println(out)
		return nil
	},
}

type checkResult struct {
	Theme   string   `json:"theme"`
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [template]",
	Short: "Check a template against every theme",
	Long:  "Report placeholder keys that a theme does not define and attribute values that are not valid colors.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := readTemplate(checkFile, args)
		if err != nil {
			return err
		}

		a, err := newApp(GetConfig(), false)
		if err != nil {
			return err
		}

		keys := placeholder.Keys(template)
		results := make([]checkResult, 0)
		problems := 0
		for _, name := range a.registry.ThemeNames() {
			t, _ := a.registry.Theme(name)
			result := checkResult{Theme: name}
			for _, key := range keys {
				value, ok := t.Lookup(key)
				if !ok {
					result.Missing = append(result.Missing, key)
					continue
				}
				if _, err := color.Decode(value); err != nil {
					result.Invalid = append(result.Invalid, key)
				}
			}
			problems += len(result.Missing) + len(result.Invalid)
			results = append(results, result)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(os.Stdout, results); err != nil {
				return err
			}
		} else {
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Theme, joinOrDash(r.Missing), joinOrDash(r.Invalid)})
			}
			fmt.Printf("Placeholders: %s\n\n", joinOrDash(keys))
			if err := writeTable(os.Stdout, []string{"THEME", "MISSING", "INVALID"}, rows); err != nil {
				return err
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		return nil
	},
}

func readTemplate(file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("pass a template argument or --file, not both")
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read template %s: %w", file, err)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", &PreflightError{
			Message:  "no template given",
			Hint:     "Pass the template as an argument or with --file",
			NextStep: "themekit render --help",
		}
	}
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
