package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-esl/internal/config"
)

type app struct {
	cfg *config.Config

	configPath string
	noColor    bool
	format     string
	lenient    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "esldump",
		Short:        "Event socket event decoder",
		Long:         "Decode, classify and validate event socket events read from a file or stdin.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Configuration file (YAML or JSON), overrides ESLDUMP_CONFIG_FILE")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(a.newDecodeCmd(), a.newLinesCmd(), a.newValidateCmd())
	return root
}

// setup loads the configuration, applies explicitly set flags and installs
// the default logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("no-color") && a.noColor {
		cfg.Color = false
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("lenient") {
		cfg.Lenient = a.lenient
	}
	a.cfg = cfg

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !cfg.Color,
		}),
	))
	slog.Debug("configuration loaded", "format", cfg.Format, "lenient", cfg.Lenient, "max_frame_size", cfg.MaxFrameSize)
	return nil
}

// openInput returns the named file, or stdin when no file is given or the
// name is "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}
