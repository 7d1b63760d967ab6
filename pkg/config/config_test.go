package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 60*time.Second {
		t.Fatalf("expected default request timeout 60s, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Storage.Driver != StorageDriverFile {
		t.Fatalf("expected file driver, got %q", cfg.Storage.Driver)
	}
	if !cfg.Signatures.VerifyEVM || !cfg.Signatures.VerifyAvail {
		t.Fatalf("expected signature verification enabled by default")
	}
	if cfg.Signatures.RegisterMessage != "Registering Wallets for AIDX Airdrop" {
		t.Fatalf("unexpected register message %q", cfg.Signatures.RegisterMessage)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("AIRDROP_DB_PASSWORD", "s3cret")

	raw := `
server:
  port: 8080
  request_timeout: 5s
storage:
  driver: postgres
database:
  host: db
  password: ${AIRDROP_DB_PASSWORD}
signatures:
  verify_avail: false
logging:
  format: console
  level: debug
`
	cfg, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Address() != "0.0.0.0:8080" {
		t.Fatalf("unexpected address %q", cfg.Server.Address())
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Fatalf("expected 5s request timeout, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Database.Password != "s3cret" {
		t.Fatalf("expected env expansion, got %q", cfg.Database.Password)
	}
	if cfg.Signatures.VerifyAvail {
		t.Fatalf("expected verify_avail=false")
	}
	if !cfg.Signatures.VerifyEVM {
		t.Fatalf("expected verify_evm default to survive partial section")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown driver", raw: "storage:\n  driver: mongo\n"},
		{name: "bad log format", raw: "logging:\n  format: xml\n"},
		{name: "bad port", raw: "server:\n  port: 70000\n"},
		{name: "bad jwks url", raw: "admin:\n  jwks_url: not a url\n"},
		{name: "malformed yaml", raw: "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadAPIServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  driver: leveldb\n  leveldb_path: /tmp/x.ldb\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadAPIServer(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Driver != StorageDriverLevelDB || cfg.Storage.LevelDBPath != "/tmp/x.ldb" {
		t.Fatalf("unexpected storage config %+v", cfg.Storage)
	}

	if _, err := LoadAPIServer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
