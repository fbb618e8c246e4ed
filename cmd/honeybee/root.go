package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sanonone/honeybee/internal/app"
	"github.com/sanonone/honeybee/internal/config"
	"github.com/sanonone/honeybee/internal/logging"
)

// usageError marks command line mistakes; they are reported with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		flagCfg    = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "honeybee [-b BADDR] [-r RADDR] [-n N] [-s S]",
		Short: "Suggest related sites from a crawled link graph",
		Long: "honeybee reads \"source target\" link pairs from stdin (or --input) and prints\n" +
			"up to five suggested sites per mode. -b counts sites reached by a bounded\n" +
			"breadth expansion, -r counts sites landed on by a random walk.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), configPath, flagCfg)
			if err != nil {
				return err
			}

			logger := logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, stderr).
				With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			logging.New("cli").Debug("Configuration resolved", "config", cfg)

			return app.New(cfg, stdout).Run(stdin)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&flagCfg.BFSStart, "bfs", "b", "", "run the bounded-level traversal from the address BADDR")
	flags.StringVarP(&flagCfg.WalkStart, "random-walk", "r", "", "run the random walk from the address RADDR")
	flags.IntVarP(&flagCfg.Levels, "levels", "n", flagCfg.Levels, "number of levels to traverse for -b")
	flags.IntVarP(&flagCfg.Steps, "steps", "s", flagCfg.Steps, "number of steps to take when random walking")
	flags.IntVar(&flagCfg.Limit, "limit", flagCfg.Limit, "maximum suggestions printed per mode")
	flags.Uint64Var(&flagCfg.Seed, "seed", 0, "random walk seed (0 draws a fresh seed)")
	flags.StringVarP(&flagCfg.Input, "input", "i", "", "link pair file (default stdin)")
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file; flags take precedence")
	flags.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&flagCfg.LogFormat, "log-format", flagCfg.LogFormat, "log format: text or json")
	flags.StringVar(&flagCfg.MetricsPath, "metrics-out", "", "write Prometheus metrics to this textfile after the run")

	return cmd
}

// resolveConfig layers the YAML file over the defaults and the flags the
// user actually set over the file.
func resolveConfig(flags *pflag.FlagSet, configPath string, flagCfg config.Config) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "bfs":
			cfg.BFSStart = flagCfg.BFSStart
			cfg.BFSRequested = true
		case "random-walk":
			cfg.WalkStart = flagCfg.WalkStart
			cfg.WalkRequested = true
		case "levels":
			cfg.Levels = flagCfg.Levels
		case "steps":
			cfg.Steps = flagCfg.Steps
		case "limit":
			cfg.Limit = flagCfg.Limit
		case "seed":
			cfg.Seed = flagCfg.Seed
		case "input":
			cfg.Input = flagCfg.Input
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		case "log-format":
			cfg.LogFormat = flagCfg.LogFormat
		case "metrics-out":
			cfg.MetricsPath = flagCfg.MetricsPath
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, &usageError{err: err}
	}
	return cfg, nil
}

// reportError prints err to stderr, followed by the usage text for usage errors.
func reportError(cmd *cobra.Command, stderr io.Writer, err error) {
	fmt.Fprintf(stderr, "Error: %v\n", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
}
