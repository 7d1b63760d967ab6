// Package pgutil holds PostgreSQL connection and test helpers
package pgutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/config"
)

const connectTimeout = 10 * time.Second

// ConnectDB creates a connection to the specified database
func ConnectDB(cfg *config.DatabaseConfig, logger *zap.Logger) (*bun.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Functional options keep special characters in credentials intact
	connector := pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "" || cfg.SSLMode == "disable"),
		pgdriver.WithDialTimeout(connectTimeout),
	)

	db := bun.NewDB(sql.OpenDB(connector), pgdialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database, err)
	}

	logger.Info("Connected to database", zap.String("database", cfg.Database), zap.String("host", cfg.Host))
	return db, nil
}
