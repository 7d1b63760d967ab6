package airdropstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

// File names and document keys of the JSON layout
const (
	AvailEligibilityFile = "eligible_addresses.json"
	EVMEligibilityFile   = "eligible_evm_addresses.json"
	RegistrationsFile    = "linked_addresses.json"

	availEligibilityKey = "eligible_addresses"
	evmEligibilityKey   = "eligible_evm_addresses"
	registrationsKey    = "registered_wallets"
)

type fileStore struct {
	dir    string
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewFileStore opens a JSON document store in dir, creating the directory and
// any missing document with an empty default.
func NewFileStore(dir string, logger *zap.Logger) (*fileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	s := &fileStore{dir: dir, logger: logger}

	defaults := map[string]string{
		AvailEligibilityFile: availEligibilityKey,
		EVMEligibilityFile:   evmEligibilityKey,
		RegistrationsFile:    registrationsKey,
	}
	for name, key := range defaults {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		switch {
		case err == nil:
			logger.Info("Data file found", zap.String("path", path))
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if err := s.writeDocument(name, key, []struct{}{}); err != nil {
			return nil, err
		}
		logger.Info("Data file created with empty default", zap.String("path", path))
	}

	return s, nil
}

func eligibilityDocument(chain airdrop.Chain) (string, string, error) {
	switch chain {
	case airdrop.ChainAvail:
		return AvailEligibilityFile, availEligibilityKey, nil
	case airdrop.ChainEVM:
		return EVMEligibilityFile, evmEligibilityKey, nil
	default:
		return "", "", fmt.Errorf("unknown chain %q", chain)
	}
}

func (s *fileStore) LoadEligibility(_ context.Context, chain airdrop.Chain) ([]airdrop.EligibilityEntry, error) {
	name, key, err := eligibilityDocument(chain)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []airdrop.EligibilityEntry
	if err := s.readDocument(name, key, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *fileStore) LoadRegistrations(_ context.Context) ([]airdrop.RegisteredWallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadRegistrations()
}

func (s *fileStore) loadRegistrations() ([]airdrop.RegisteredWallet, error) {
	var records []airdrop.RegisteredWallet
	if err := s.readDocument(RegistrationsFile, registrationsKey, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *fileStore) AppendRegistration(_ context.Context, rec *airdrop.RegisteredWallet) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRegistrations()
	if err != nil {
		return err
	}
	if err := checkUnique(records, rec); err != nil {
		return err
	}

	return s.writeDocument(RegistrationsFile, registrationsKey, append(records, *rec))
}

func (s *fileStore) ReplaceEligibility(_ context.Context, chain airdrop.Chain, entries []airdrop.EligibilityEntry) error {
	name, key, err := eligibilityDocument(chain)
	if err != nil {
		return err
	}
	if err := validateEntries(chain, entries); err != nil {
		return err
	}
	if entries == nil {
		entries = []airdrop.EligibilityEntry{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeDocument(name, key, entries)
}

func (s *fileStore) Close() error {
	return nil
}

// readDocument decodes the array stored under key in the named document.
func (s *fileStore) readDocument(name, key string, out any) error {
	path := filepath.Join(s.dir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	list, ok := doc[key]
	if !ok {
		return fmt.Errorf("failed to parse %s: missing %q", path, key)
	}
	if err := json.Unmarshal(list, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeDocument replaces the named document atomically via a temp file and rename.
func (s *fileStore) writeDocument(name, key string, list any) error {
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(map[string]any{key: list}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
