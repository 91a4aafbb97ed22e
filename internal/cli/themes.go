// Package cli provides theme inspection commands.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/theme"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

type themeSummary struct {
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	Attributes int    `json:"attributes"`
	Source     string `json:"source,omitempty"`
}

type themeDetail struct {
	Name       string           `json:"name"`
	Source     string           `json:"source,omitempty"`
	Attributes []themeAttribute `json:"attributes"`
}

type themeAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  "List themes in registration order. The configured theme is marked active when it exists.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		a, err := newApp(cfg, false)
		if err != nil {
			return err
		}

		if cfg != nil {
			if err := a.registry.SetTheme(cfg.Theme.Active); err != nil {
				logger := logging.Component("cli")
				logger.Warn().Err(err).Str("theme", cfg.Theme.Active).Msg("configured theme is not available")
			}
		}

		active, _ := a.registry.ActiveTheme()
		summaries := make([]themeSummary, 0)
		for _, name := range a.registry.ThemeNames() {
			t, _ := a.registry.Theme(name)
			summary := themeSummary{
				Name:       name,
				Active:     active != nil && active.Name() == name,
				Attributes: t.Len(),
			}
			if def := a.definition(name); def != nil {
				summary.Source = def.Source
			}
			summaries = append(summaries, summary)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, summaries)
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Name, formatYesNo(s.Active), strconv.Itoa(s.Attributes), s.Source})
		}
		return writeTable(os.Stdout, []string{"NAME", "ACTIVE", "ATTRIBUTES", "SOURCE"}, rows)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a theme's attributes",
	Long:  "Show the resolved attributes of a theme, including those inherited from the base theme.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(GetConfig(), len(args) == 0)
		if err != nil {
			return err
		}

		var t *theme.Theme
		if len(args) == 1 {
			var ok bool
			if t, ok = a.registry.Theme(args[0]); !ok {
				if args[0] != theme.BaseThemeName {
					return fmt.Errorf("%w: %q", theme.ErrUnknownTheme, args[0])
				}
				if t, ok = a.registry.Base(); !ok {
					return fmt.Errorf("no base theme defined")
				}
			}
		} else {
			if t, err = a.registry.ActiveTheme(); err != nil {
				return err
			}
		}

		detail := themeDetail{Name: t.Name()}
		if def := a.definition(t.Name()); def != nil {
			detail.Source = def.Source
		}
		for _, key := range t.Keys() {
			value, _ := t.Lookup(key)
			detail.Attributes = append(detail.Attributes, themeAttribute{Key: key, Value: value})
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, detail)
		}

		fmt.Printf("Theme: %s\n", detail.Name)
		if detail.Source != "" {
			fmt.Printf("Source: %s\n", detail.Source)
		}
		fmt.Println()

		rows := make([][]string, 0, len(detail.Attributes))
		for _, attr := range detail.Attributes {
			rows = append(rows, []string{attr.Key, attr.Value, swatch(attr.Value)})
		}
		return writeTable(os.Stdout, []string{"KEY", "VALUE", ""}, rows)
	},
}
