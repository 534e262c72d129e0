package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/mysticguide/internal/config"
	"github.com/arcanaland/mysticguide/internal/locale"
	"github.com/arcanaland/mysticguide/internal/logging"
	"github.com/arcanaland/mysticguide/internal/store"
)

// app bundles what every command needs: config, logger, messages and storage
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	bundle *locale.Bundle
	store  *store.Store
	closer io.Closer
}

func newApp(cmd *cobra.Command) (*app, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if l, _ := cmd.Flags().GetString("locale"); l != "" {
		cfg.Locale = l
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		if err := logging.ValidateLevel(l); err != nil {
			return nil, err
		}
		cfg.LogLevel = l
	}

	logger := logging.New(cfg.LogLevel)
	bundle := locale.Load(cfg.Locale, logging.Component(logger, "locale"))

	st, closer, err := store.Open(cfg.Storage, config.GetDataDir(), logging.Component(logger, "store"))
	if err != nil {
		return nil, fmt.Errorf("error opening reading store: %w", err)
	}

	return &app{cfg: cfg, logger: logger, bundle: bundle, store: st, closer: closer}, nil
}

func (a *app) Close() {
	a.closer.Close()
	a.logger.Sync()
}
