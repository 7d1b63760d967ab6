package airdropstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

// pgUniqueViolation is the SQLSTATE of a unique constraint violation
const pgUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewPGStore creates a new postgres implementation of the airdrop store.
// The schema is expected to be migrated already (see pkg/migrations/airdropdb).
func NewPGStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) LoadEligibility(ctx context.Context, chain airdrop.Chain) ([]airdrop.EligibilityEntry, error) {
	var daos []EligibleAddressDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("chain = ?", string(chain)).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s eligibility: %w", chain, err)
	}

	entries := make([]airdrop.EligibilityEntry, len(daos))
	for i := range daos {
		entries[i] = toEligibilityEntry(&daos[i])
	}
	return entries, nil
}

func (s *pgStore) LoadRegistrations(ctx context.Context) ([]airdrop.RegisteredWallet, error) {
	var daos []RegisteredWalletDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}

	records := make([]airdrop.RegisteredWallet, len(daos))
	for i := range daos {
		records[i] = toRegisteredWallet(&daos[i])
	}
	return records, nil
}

func (s *pgStore) AppendRegistration(ctx context.Context, rec *airdrop.RegisteredWallet) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	_, err := s.db.NewInsert().
		Model(toRegisteredWalletDao(rec)).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateSource, err)
		}
		return fmt.Errorf("failed to append registration: %w", err)
	}
	return nil
}

func (s *pgStore) ReplaceEligibility(ctx context.Context, chain airdrop.Chain, entries []airdrop.EligibilityEntry) error {
	if err := validateEntries(chain, entries); err != nil {
		return err
	}

	daos := make([]*EligibleAddressDao, len(entries))
	for i, e := range entries {
		daos[i] = toEligibleAddressDao(chain, e)
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*EligibleAddressDao)(nil)).
			Where("chain = ?", string(chain)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear %s eligibility: %w", chain, err)
		}

		if len(daos) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&daos).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert %s eligibility: %w", chain, err)
		}
		return nil
	})
}

func (s *pgStore) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation() && pgErr.Field('C') == pgUniqueViolation
}
