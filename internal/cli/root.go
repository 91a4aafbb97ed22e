// Package cli implements the themekit command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	jsonOutput     bool
	jsonlOutput    bool
	noColor        bool
	nonInteractive bool
	themeFlag      string
	metricsOutput  bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "themekit",
	Short:         "Manage and preview color themes",
	Long:          "themekit resolves themed style templates against a registry of named color themes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "Fix the configuration file or pass --config with a valid path",
				NextStep: "themekit --help",
			}
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if themeFlag != "" {
			cfg.Theme.Active = themeFlag
		}
		appConfig = cfg

		logging.Init(logging.Config{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			NoColor: noColor,
		})
		if cfg.Source != "" {
			logger := logging.Component("cli")
			logger.Debug().Str("path", cfg.Source).Msg("loaded config")
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/themekit/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVarP(&themeFlag, "theme", "t", "", "theme to activate (overrides config)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive UI")
	flags.BoolVar(&metricsOutput, "metrics", false, "write registry metrics to stderr when the command finishes")
}

// Execute runs the root command.
func Execute() int {
	err := rootCmd.Execute()
	if metricsOutput {
		if merr := writeMetrics(os.Stderr); merr != nil {
			logger := logging.Component("cli")
			logger.Warn().Err(merr).Msg("write metrics")
		}
	}
	if err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// IsNonInteractive reports whether interactive UI is disabled.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("THEMEKIT_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

func printError(out *os.File, err error) {
	var pre *PreflightError
	if errors.As(err, &pre) {
		fmt.Fprintf(out, "Error: %s\n", pre.Message)
		if pre.Hint != "" {
			fmt.Fprintf(out, "Hint: %s\n", pre.Hint)
		}
		if pre.NextStep != "" {
			fmt.Fprintf(out, "Next: %s\n", pre.NextStep)
		}
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}
