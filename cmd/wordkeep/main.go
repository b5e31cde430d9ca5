// Command wordkeep runs the vocabulary service and its maintenance tasks.
//
//	wordkeep serve     HTTP API plus the daily reminder
//	wordkeep migrate   apply database migrations
//	wordkeep enrich    enrich words that have no dictionary data yet
//	wordkeep remind    run the reminder check once
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordkeep/internal/app"
	"github.com/heartmarshall/wordkeep/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type cliEnv struct {
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		rt         cliEnv
	)

	root := &cobra.Command{
		Use:           "wordkeep",
		Short:         "Personal vocabulary trainer with spaced repetition",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			rt.cfg = cfg
			rt.log = app.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newServeCmd(&rt),
		newMigrateCmd(&rt),
		newEnrichCmd(&rt),
		newRemindCmd(&rt),
	)
	return root
}

func newServeCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), rt, func(ctx context.Context, a *app.App) error {
				return a.Serve(ctx)
			})
		},
	}
}

func newMigrateCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Migrate(cmd.Context(), rt.cfg, rt.log); err != nil {
				rt.log.Error("migrate", slog.String("error", err.Error()))
				return err
			}
			rt.log.Info("migrations applied")
			return nil
		},
	}
}

func newEnrichCmd(rt *cliEnv) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Fetch definitions and translations for words that have none",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), rt, func(ctx context.Context, a *app.App) error {
				changed, err := a.EnrichPending(ctx, lang)
				if err != nil {
					return err
				}
				rt.log.InfoContext(ctx, "enrichment finished", slog.Int("changed", changed))
				fmt.Fprintf(cmd.OutOrStdout(), "enriched %d words\n", changed)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "translation language (default: settings)")
	return cmd
}

func newRemindCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Check today's queue once and notify if anything is due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), rt, func(ctx context.Context, a *app.App) error {
				d, err := a.Reminder.RunOnce(ctx)
				if err != nil {
					return err
				}
				if d.Notify {
					fmt.Fprintln(cmd.OutOrStdout(), d.Message)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing to review today")
				}
				return nil
			})
		},
	}
}

// withApp builds the application, runs fn and releases everything.
func withApp(ctx context.Context, rt *cliEnv, fn func(context.Context, *app.App) error) error {
	a, err := app.New(ctx, rt.cfg, rt.log)
	if err != nil {
		rt.log.Error("build app", slog.String("error", err.Error()))
		return err
	}
	defer a.Close()

	if err := fn(ctx, a); err != nil {
		rt.log.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
