package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	duckarchive "github.com/bnema/obdlog/internal/adapters/archive/duckdb"
	tomlrepo "github.com/bnema/obdlog/internal/adapters/repo/toml"
	yamlpack "github.com/bnema/obdlog/internal/adapters/repo/yaml"
	filesource "github.com/bnema/obdlog/internal/adapters/source/file"
	telnetsource "github.com/bnema/obdlog/internal/adapters/source/telnet"
	"github.com/bnema/obdlog/internal/application"
	"github.com/bnema/obdlog/internal/logging"
	"github.com/bnema/obdlog/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	config   *viper.Viper
	logger   zerolog.Logger
	service  *application.Service
	formulas *application.FormulaService
	clock    ports.Clock
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, cfg.GetString(logLevelKey), false)

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire formula repository: %w", err)
	}

	service := application.NewService(filesource.NewSource(), logger)

	return &app{
		config:   cfg,
		logger:   logger,
		service:  service,
		formulas: application.NewFormulaService(service, repo, yamlpack.NewLoader()),
		clock:    ports.SystemClock{},
	}, nil
}

// openArchive opens the DuckDB archive only for the commands that need it.
// The returned closer must be called once the command is done.
func (a *app) openArchive(ctx context.Context) (*application.ArchiveService, io.Closer, error) {
	archivePath := a.config.GetString(archivePathKey)
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create archive directory: %w", err)
	}

	store, err := duckarchive.Open(ctx, archivePath)
	if err != nil {
		return nil, nil, fmt.Errorf("wire session archive: %w", err)
	}

	return application.NewArchiveService(a.service, store, a.clock), store, nil
}

func (a *app) captureService(address string, timeout time.Duration, progress telnetsource.ProgressFunc) *application.CaptureService {
	if address == "" {
		address = a.config.GetString(captureAddressKey)
	}
	if timeout <= 0 {
		timeout = a.config.GetDuration(captureTimeoutKey)
	}

	capturer := telnetsource.NewCapturer(address, timeout, a.logger, telnetsource.WithProgress(progress))
	return application.NewCaptureService(a.service, capturer)
}
