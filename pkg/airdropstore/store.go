// Package airdropstore persists eligibility lists and wallet registrations.
//
// Three backends are provided: whole-document JSON files (the historical
// format), an embedded LevelDB database and PostgreSQL via bun. Every backend
// re-validates source-address uniqueness inside its own write scope, so a
// racing duplicate is rejected with ErrDuplicateSource even when two callers
// both passed a lookup-before-insert check.
package airdropstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

var (
	// ErrDuplicateSource is returned when a record names a source address that
	// is already registered as a source.
	ErrDuplicateSource = errors.New("source address already registered")
	// ErrInvalidRecord is returned for records that break the registration invariants.
	ErrInvalidRecord = errors.New("invalid registration record")
)

// Store is the persistence contract of the registration service.
type Store interface {
	// LoadEligibility returns the eligibility list of chain.
	LoadEligibility(ctx context.Context, chain airdrop.Chain) ([]airdrop.EligibilityEntry, error)
	// LoadRegistrations returns every registration in insertion order.
	LoadRegistrations(ctx context.Context) ([]airdrop.RegisteredWallet, error)
	// AppendRegistration persists rec, failing with ErrDuplicateSource if one of
	// its sources is already registered.
	AppendRegistration(ctx context.Context, rec *airdrop.RegisteredWallet) error
	// ReplaceEligibility overwrites the eligibility list of chain.
	ReplaceEligibility(ctx context.Context, chain airdrop.Chain, entries []airdrop.EligibilityEntry) error
	Close() error
}

func validateRecord(rec *airdrop.RegisteredWallet) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	if rec.AvailAddress == "" && rec.EVMAddress == "" {
		return fmt.Errorf("%w: no source address", ErrInvalidRecord)
	}
	if rec.FinalEVMAddress == "" {
		return fmt.Errorf("%w: no destination address", ErrInvalidRecord)
	}
	return nil
}

// checkUnique returns ErrDuplicateSource if rec shares a source with any of existing.
func checkUnique(existing []airdrop.RegisteredWallet, rec *airdrop.RegisteredWallet) error {
	for i := range existing {
		if rec.AvailAddress != "" && existing[i].HasSource(airdrop.ChainAvail, rec.AvailAddress) {
			return fmt.Errorf("%w: %s", ErrDuplicateSource, rec.AvailAddress)
		}
		if rec.EVMAddress != "" && existing[i].HasSource(airdrop.ChainEVM, rec.EVMAddress) {
			return fmt.Errorf("%w: %s", ErrDuplicateSource, rec.EVMAddress)
		}
	}
	return nil
}

func validateEntries(chain airdrop.Chain, entries []airdrop.EligibilityEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Address == "" {
			return fmt.Errorf("empty address in %s eligibility list", chain)
		}
		key := chain.NormalizeAddress(e.Address)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate address %s in %s eligibility list", e.Address, chain)
		}
		seen[key] = struct{}{}
	}
	return nil
}
