// Command tidecull deletes dated entries in a backup directory according to
// a tiered retention config. Entry names must be RFC3339 timestamps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tidecull/tidecull/internal/config"
	"github.com/tidecull/tidecull/internal/deleter"
	"github.com/tidecull/tidecull/internal/logging"
	"github.com/tidecull/tidecull/internal/retention"
	"github.com/tidecull/tidecull/internal/runner"
	"github.com/tidecull/tidecull/internal/schedule"
)

func main() {
	cobra.OnInitialize(initEnv)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initEnv() {
	viper.SetEnvPrefix("TIDECULL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tidecull <config>",
		Short: "Thin a directory of timestamped backups with tiered retention",
		Long: `tidecull scans a directory for entries named as RFC3339 timestamps,
keeps one representative per retention chunk as configured, and deletes
the rest. Each run recomputes everything from the current listing; no
state is carried between runs.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	cmd.Flags().CountP("verbose", "v", "log more, twice for trace")
	cmd.Flags().BoolP("quiet", "q", false, "do not output anything but errors")
	cmd.Flags().BoolP("dry-run", "n", false, "report decisions without deleting anything")
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", cmd.Flags().Lookup("quiet"))
	_ = viper.BindPFlag("dry-run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, viper.GetInt("verbose"), viper.GetBool("quiet"), cfg.Logging.Level)

	log.Debug().Msg("tiers:")
	for _, t := range cfg.Tiers {
		log.Debug().Str("length", t.Length.String()).Str("chunk", t.Chunk.String()).Msg("  tier")
	}

	engine, err := retention.NewEngine(cfg.Policy(), log)
	if err != nil {
		return err
	}

	del := deleter.New(cfg.Btrfs, viper.GetBool("dry-run"), log)
	r := runner.New(cfg.Path, engine, del, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down...")
		cancel()
	}()

	if cfg.Schedule == "" {
		_, err := r.Run(ctx, time.Now())
		return err
	}

	sched := schedule.New(cfg.Schedule, func(ctx context.Context, now time.Time) error {
		_, err := r.Run(ctx, now)
		return err
	}, log)
	return sched.Start(ctx)
}
