package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/chainsafe/airdrop-registry/pkg/config"
	"github.com/chainsafe/airdrop-registry/pkg/pgutil"
)

// Test DAO for testing purposes
type snapshotDao struct {
	bun.BaseModel `bun:"table:snapshot_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Address       string `bun:",notnull,type:varchar(64)"`
	Tokens        int64  `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(cfg, nil)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "snapshot_table")

	// Idempotent
	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "snapshot_table")

	if err := DropTables(ctx, db, &snapshotDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &snapshotDao{}, "address", "tokens"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_snapshot_table_address")
	pgutil.AssertIndexExists(t, db, "idx_snapshot_table_tokens")

	if err := DropModelIndexes(ctx, db, &snapshotDao{}, "address", "tokens"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, "idx_snapshot_table_address").Scan(ctx, &exists); err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if exists {
		t.Error("idx_snapshot_table_address should be dropped")
	}
}

func TestModelIndexName_NilModel(t *testing.T) {
	if _, err := modelIndexName(nil, nil, "address"); err == nil {
		t.Fatal("expected error for nil model")
	}
}
