package airdropstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

func TestFileStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, err := NewFileStore(t.TempDir(), zap.NewNop())
		require.NoError(t, err)
		return s
	})
}

func TestFileStore_CreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	_, err := NewFileStore(dir, nil)
	require.NoError(t, err)

	expected := map[string]string{
		AvailEligibilityFile: `{"eligible_addresses":[]}`,
		EVMEligibilityFile:   `{"eligible_evm_addresses":[]}`,
		RegistrationsFile:    `{"registered_wallets":[]}`,
	}
	for name, want := range expected {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.JSONEq(t, want, string(raw), name)
	}
}

func TestFileStore_ReadsExistingDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, AvailEligibilityFile, `{"eligible_addresses":[{"address":"`+testAvail+`","tokens":100}]}`)
	writeFile(t, dir, RegistrationsFile, `{"registered_wallets":[{"avail_address":"`+testAvail2+`","evm_address":"","final_evm_address":"`+testFinal+`","tokens":7,"timestamp":"`+testTS+`","avail_signature":"0x1","evm_signature":"0x2"}]}`)

	s, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	entries, err := s.LoadEligibility(ctx, airdrop.ChainAvail)
	require.NoError(t, err)
	require.Equal(t, []airdrop.EligibilityEntry{{Address: testAvail, Tokens: 100}}, entries)

	records, err := s.LoadRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, testAvail2, records[0].AvailAddress)
	require.Equal(t, uint64(7), records[0].Tokens)

	// Existing documents are never overwritten by the bootstrap
	require.NoError(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{
		EVMAddress:      testEVM,
		FinalEVMAddress: testFinal,
		Tokens:          50,
	}))

	raw, err := os.ReadFile(filepath.Join(dir, RegistrationsFile))
	require.NoError(t, err)
	var doc struct {
		Wallets []airdrop.RegisteredWallet `json:"registered_wallets"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Wallets, 2)
	require.Equal(t, testEVM, doc.Wallets[1].EVMAddress)
}

func TestFileStore_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	writeFile(t, dir, EVMEligibilityFile, `{"eligible_evm_addresses": [`)
	_, err = s.LoadEligibility(context.Background(), airdrop.ChainEVM)
	require.Error(t, err)

	writeFile(t, dir, RegistrationsFile, `{"wallets": []}`)
	_, err = s.LoadRegistrations(context.Background())
	require.Error(t, err)

	err = s.AppendRegistration(context.Background(), &airdrop.RegisteredWallet{EVMAddress: testEVM, FinalEVMAddress: testFinal})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDuplicateSource)
}

func TestFileStore_UnknownChain(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	_, err = s.LoadEligibility(context.Background(), airdrop.Chain("solana"))
	require.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
