package airdropstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

func TestLevelDBStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s, err := NewLevelDBStore(filepath.Join(t.TempDir(), "airdrop.ldb"), zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestLevelDBStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airdrop.ldb")
	ctx := context.Background()

	s, err := NewLevelDBStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.ReplaceEligibility(ctx, airdrop.ChainAvail, []airdrop.EligibilityEntry{{Address: testAvail, Tokens: 100}}))
	require.NoError(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{AvailAddress: testAvail, FinalEVMAddress: testFinal, Tokens: 100}))
	require.NoError(t, s.Close())

	s, err = NewLevelDBStore(path, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	entries, err := s.LoadEligibility(ctx, airdrop.ChainAvail)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Sequence and source index survive a restart
	require.NoError(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{EVMAddress: testEVM, FinalEVMAddress: testFinal, Tokens: 50}))
	require.ErrorIs(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{AvailAddress: testAvail, FinalEVMAddress: testFinal}), ErrDuplicateSource)

	records, err := s.LoadRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, testAvail, records[0].AvailAddress)
	require.Equal(t, testEVM, records[1].EVMAddress)
}
