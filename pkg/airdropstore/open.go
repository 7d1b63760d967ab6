package airdropstore

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/config"
	"github.com/chainsafe/airdrop-registry/pkg/pgutil"
)

// Open returns the Store selected by cfg.Driver.
func Open(cfg *config.StorageConfig, dbCfg *config.DatabaseConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StorageDriverFile, "":
		return NewFileStore(cfg.DataDir, logger)
	case config.StorageDriverLevelDB:
		return NewLevelDBStore(cfg.LevelDBPath, logger)
	case config.StorageDriverPostgres:
		db, err := pgutil.ConnectDB(dbCfg, logger)
		if err != nil {
			return nil, err
		}
		return NewPGStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
