package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"catalog-manager/config"
	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/delivery/shell"
	"catalog-manager/internal/catalog/projector"
	"catalog-manager/internal/catalog/repository/memory"
	"catalog-manager/internal/catalog/usecase"
	"catalog-manager/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		locale   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "catalog-shell",
		Short: "Interactive in-memory catalog manager",
		Long: `catalog-shell keeps a product catalog in memory for the lifetime of the
process. Items can be added, removed, searched, filtered, sorted and have
their order counts adjusted. Nothing is written to disk.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), locale, logLevel)
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "collation locale for item names (overrides catalog.locale)")
	cmd.Flags().StringVar(&logLevel, "log-level", "error", "log level; kept low so logs do not interleave with the prompt")

	return cmd
}

func run(parent context.Context, locale, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if locale == "" {
		locale = cfg.Catalog.Locale
	}
	tag, err := projector.ParseLocale(locale)
	if err != nil {
		return err
	}

	images := make([]catalog.PresetImage, 0, len(cfg.Catalog.PresetImages))
	for _, img := range cfg.Catalog.PresetImages {
		images = append(images, catalog.PresetImage{Name: img.Name, Path: img.Path})
	}

	proj := projector.New(tag)
	logger.Debugf(ctx, "Collating item names as %s", proj.Locale())

	uc := usecase.New(logger, memory.New(logger), proj, nil, images)
	return shell.New(logger, uc, os.Stdin, os.Stdout).Run(ctx)
}
