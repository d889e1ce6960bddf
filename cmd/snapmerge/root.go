package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/backmassage/snapmerge/internal/check"
	"github.com/backmassage/snapmerge/internal/config"
	"github.com/backmassage/snapmerge/internal/display"
	"github.com/backmassage/snapmerge/internal/logging"
	"github.com/backmassage/snapmerge/internal/pipeline"
)

var errCheckFailed = errors.New("system check failed")

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "snapmerge",
		Short: "Combine memory overlays with their photos and videos",
		Long: "snapmerge scans a memories export (one folder per memory) and burns each\n" +
			"caption/sticker overlay into its base photo or video. Originals are never\n" +
			"modified; combined files go to a separate folder.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(&flags, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), &cfg, in, out)
		},
	}
	flags.Register(cmd.Flags())
	return cmd
}

// loadConfig layers defaults, the TOML file, .env and SNAPMERGE_* variables,
// then the flags the user set, and validates the result.
func loadConfig(flags *config.Flags, fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.DefaultConfig()

	path, found, err := config.ResolvePath(flags.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if found {
		if err := config.LoadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	flags.Apply(&cfg, fs)

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(out)

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return errCheckFailed
		}
		return nil
	}

	log.Info("=== snapmerge v%s ===", version)
	log.Info("In:  %s", cfg.SourceDir)
	log.Info("Out: %s", cfg.OutputDir)

	if !cfg.SkipPrompt && !confirm(in, out, cfg) {
		log.Info("Cancelled.")
		return nil
	}

	// Cancel on SIGINT/SIGTERM so the run stops between memories.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current memory...")
			cancel()
		case <-ctx.Done():
		}
	}()

	report, err := pipeline.Execute(ctx, cfg, log)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if report.Errors > 0 {
		return fmt.Errorf("%d memories could not be combined", report.Errors)
	}
	return nil
}
