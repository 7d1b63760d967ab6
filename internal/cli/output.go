package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdropstore"
	"github.com/chainsafe/airdrop-registry/pkg/config"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Print writes data as indented JSON, or calls text in text mode.
func (f *OutputFormatter) Print(data any, text func(w io.Writer) error) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return text(f.Writer)
}

// loadConfig reads the server configuration and builds a logger writing to
// stderr, so command output on stdout stays parseable.
func loadConfig(opts *RootOptions) (*config.APIServerConfig, *zap.Logger, error) {
	cfg, err := config.LoadAPIServer(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if !opts.Verbose {
		return cfg, zap.NewNop(), nil
	}

	logCfg := cfg.Logging
	logCfg.OutputPath = "stderr"
	logger, err := config.NewLogger(logCfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func openStore(opts *RootOptions) (airdropstore.Store, *config.APIServerConfig, *zap.Logger, error) {
	cfg, logger, err := loadConfig(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := airdropstore.Open(&cfg.Storage, &cfg.Database, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}
	return store, cfg, logger, nil
}
