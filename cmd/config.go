package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tomlrepo "github.com/bnema/obdlog/internal/adapters/repo/toml"
	"github.com/spf13/viper"
)

const (
	configDirName = ".obdlog"
	envPrefix     = "OBDLOG"

	archivePathKey    = "archive.path"
	captureAddressKey = "capture.address"
	captureTimeoutKey = "capture.timeout"
	logLevelKey       = "log.level"
	evalVariableKey   = "eval.variable"

	defaultCaptureAddress = "192.168.0.10:35000"
	defaultCaptureTimeout = 10 * time.Second
)

// loadConfig reads ~/.obdlog/config.toml when present. Every key can be
// overridden from the environment, e.g. OBDLOG_CAPTURE_ADDRESS.
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(tomlrepo.FormulasPathKey, filepath.Join(configDir, "formulas.toml"))
	cfg.SetDefault(archivePathKey, filepath.Join(configDir, "archive.duckdb"))
	cfg.SetDefault(captureAddressKey, defaultCaptureAddress)
	cfg.SetDefault(captureTimeoutKey, defaultCaptureTimeout)
	cfg.SetDefault(logLevelKey, "warn")
	cfg.SetDefault(evalVariableKey, 0.0)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}
