package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
	StorageDriverLevelDB  = "leveldb"
)

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"3000" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// Address returns the host:port the server listens on.
func (c *ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver      string `yaml:"driver" default:"file" validate:"oneof=file postgres leveldb"`
	DataDir     string `yaml:"data_dir" default:"./data" validate:"required_if=Driver file"`
	LevelDBPath string `yaml:"leveldb_path" default:"./data/airdrop.ldb" validate:"required_if=Driver leveldb"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"airdrop"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// SignatureConfig controls wallet signature verification.
//
// Disabling a chain's verification puts the server in trust mode for that
// chain: signatures are still required where the registration rules ask for
// them, but their content is not checked.
type SignatureConfig struct {
	VerifyEVM       bool   `yaml:"verify_evm" default:"true"`
	VerifyAvail     bool   `yaml:"verify_avail" default:"true"`
	RegisterMessage string `yaml:"register_message" default:"Registering Wallets for AIDX Airdrop" validate:"required"`
	RequireOnCheck  bool   `yaml:"require_on_check"`
}

// CORSConfig contains browser origin settings
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" default:"[\"*\"]"`
}

// AdminConfig contains JWKS settings for the admin routes. Admin routes are
// not mounted when JWKSURL is empty.
type AdminConfig struct {
	JWKSURL string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer  string `yaml:"issuer"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// APIServerConfig represents the airdrop registration server configuration
type APIServerConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Database   DatabaseConfig   `yaml:"database"`
	Signatures SignatureConfig  `yaml:"signatures"`
	CORS       CORSConfig       `yaml:"cors"`
	Admin      AdminConfig      `yaml:"admin"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Default returns a configuration populated only with defaults.
func Default() (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set defaults: %w", err)
	}
	return &cfg, nil
}

// LoadAPIServer loads API server configuration from file.
// ${VAR} references in the file are expanded from the environment.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document into an APIServerConfig, applying defaults
// and validation.
func Parse(raw []byte) (*APIServerConfig, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(raw))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateAPIServer(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateAPIServer(cfg *APIServerConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.Storage.Driver == StorageDriverPostgres && cfg.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	return nil
}
