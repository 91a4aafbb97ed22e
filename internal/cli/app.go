package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/metrics"
	"github.com/opencode-ai/themekit/internal/theme"
)

// app is the composition root shared by commands: one registry per process.
type app struct {
	registry    *theme.Registry
	definitions []*theme.Definition
	metrics     *prometheus.Registry
}

func themeDirs(cfg *config.Config) []string {
	dirs := make([]string, 0, len(cfg.Theme.Dirs)+3)
	dirs = append(dirs, cfg.Theme.Dirs...)
	projectDir, _ := os.Getwd()
	dirs = append(dirs, theme.SearchPaths(projectDir)...)
	return dirs
}

// newApp loads theme definitions and builds the registry. When activate is
// true the configured theme is made active.
func newApp(cfg *config.Config, activate bool) (*app, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	defs, err := theme.LoadDefinitions(themeDirs(cfg))
	if err != nil {
		return nil, err
	}

	promRegistry := prometheus.NewRegistry()
	opts := []theme.Option{theme.WithMetrics(metrics.NewRegistry(promRegistry))}
	if cfg.Theme.Strict {
		opts = append(opts, theme.WithStrictAttributes())
	}

	registry := theme.NewRegistry(logging.Component("theme-registry"), opts...)
	theme.Install(registry, defs)

	if activate {
		if err := registry.SetTheme(cfg.Theme.Active); err != nil {
			if errors.Is(err, theme.ErrUnknownTheme) {
				return nil, &PreflightError{
					Message:  fmt.Sprintf("theme %q not found", cfg.Theme.Active),
					Hint:     "Pick a theme from the list or add a theme file to a search path",
					NextStep: "themekit list",
				}
			}
			return nil, err
		}
	}

	appMetrics = promRegistry
	return &app{
		registry:    registry,
		definitions: defs,
		metrics:     promRegistry,
	}, nil
}

func (a *app) definition(name string) *theme.Definition {
	for _, def := range a.definitions {
		if def.Name == name {
			return def
		}
	}
	return nil
}
