package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/torneokills/torneo/internal/config"
)

// Settings holds the global flags
type Settings struct {
	ConfigFile string
	Output     string
	LogLevel   string
}

var (
	settings  = &Settings{}
	appConfig *config.Config
	logger    *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	settings = &Settings{Output: "text"}

	rootCmd := &cobra.Command{
		Use:   "torneo",
		Short: "Tournament registration and kill payouts",
		Long: `torneo runs the tournament registration site and its admin tools.

The serve command starts the entry form, the admin panel and the payout
report. The other commands work directly against the configured store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Options{ConfigFile: settings.ConfigFile})
			if err != nil {
				return err
			}
			if settings.LogLevel != "" {
				cfg.Log.Level = settings.LogLevel
			}

			l, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			appConfig = cfg
			logger = l
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&settings.ConfigFile, "config", "c", "", "Config file (default: ./config.yaml when present)")
	rootCmd.PersistentFlags().StringVarP(&settings.Output, "output", "o", settings.Output, "Output format: text, json")
	rootCmd.PersistentFlags().StringVar(&settings.LogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedTournamentCmd())
	rootCmd.AddCommand(newRateCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log.format %q: must be json or text", cfg.Format)
	}
}

// closeLogged closes c and logs a failure instead of dropping it
func closeLogged(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		logger.Warn("failed to close "+what, slog.String("error", err.Error()))
	}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(settings.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
