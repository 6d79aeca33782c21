package cmd

import (
	"errors"
	"fmt"

	"cookie-importer/core/config"
	"cookie-importer/core/logger"
	"cookie-importer/core/storage"
	"cookie-importer/feature/importer"

	"go.uber.org/zap"
)

var configDir string

// runtime bundles what every subcommand builds from the configuration.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	service *importer.Service
}

// newRuntime loads the configuration and wires the import service. A non-empty
// format overrides log.format.
func newRuntime(format string) (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if format != "" {
		cfg.Log.Format = format
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// Object storage is optional
	var client storage.Client
	if c, err := storage.NewClient(cfg.Storage); err == nil {
		client = c
	} else if !errors.Is(err, storage.ErrNotConfigured) {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	svc := importer.NewService(cfg.Import, cfg.Database, cfg.Storage, client, logg)
	return &runtime{cfg: cfg, logger: logg, client: client, service: svc}, nil
}

func (r *runtime) close() {
	_ = r.logger.Sync()
}
