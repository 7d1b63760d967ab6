package airdropstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

const (
	testAvail    = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	testAvail2   = "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"
	testEVM      = "0xdEADbeefDEadBEEfdeadbeefdeadbeefDEADBEEF"
	testEVM2     = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testFinal    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testTS       = "2024-05-01T10:00:00.000Z"
	testSigEVM   = "0xevm"
	testSigAvail = "0xavail"
)

// runStoreSuite exercises the Store contract against a fresh backend.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("empty", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, chain := range airdrop.Chains {
			entries, err := s.LoadEligibility(ctx, chain)
			require.NoError(t, err)
			require.Empty(t, entries)
		}

		records, err := s.LoadRegistrations(ctx)
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("replace eligibility", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.ReplaceEligibility(ctx, airdrop.ChainAvail, []airdrop.EligibilityEntry{
			{Address: testAvail, Tokens: 100},
		}))
		require.NoError(t, s.ReplaceEligibility(ctx, airdrop.ChainEVM, []airdrop.EligibilityEntry{
			{Address: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", Tokens: 50},
			{Address: testEVM2, Tokens: 25},
		}))

		avail, err := s.LoadEligibility(ctx, airdrop.ChainAvail)
		require.NoError(t, err)
		require.Equal(t, []airdrop.EligibilityEntry{{Address: testAvail, Tokens: 100}}, avail)

		evm, err := s.LoadEligibility(ctx, airdrop.ChainEVM)
		require.NoError(t, err)
		require.ElementsMatch(t, []airdrop.EligibilityEntry{
			{Address: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", Tokens: 50},
			{Address: testEVM2, Tokens: 25},
		}, evm)

		// Replacing drops previous entries of that chain only
		require.NoError(t, s.ReplaceEligibility(ctx, airdrop.ChainEVM, []airdrop.EligibilityEntry{
			{Address: testEVM2, Tokens: 30},
		}))
		evm, err = s.LoadEligibility(ctx, airdrop.ChainEVM)
		require.NoError(t, err)
		require.Equal(t, []airdrop.EligibilityEntry{{Address: testEVM2, Tokens: 30}}, evm)

		avail, err = s.LoadEligibility(ctx, airdrop.ChainAvail)
		require.NoError(t, err)
		require.Len(t, avail, 1)

		// Duplicates differing only by case are rejected for EVM
		err = s.ReplaceEligibility(ctx, airdrop.ChainEVM, []airdrop.EligibilityEntry{
			{Address: testEVM, Tokens: 1},
			{Address: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", Tokens: 2},
		})
		require.Error(t, err)
	})

	t.Run("append registration", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first := &airdrop.RegisteredWallet{
			AvailAddress:    testAvail,
			EVMAddress:      testEVM,
			FinalEVMAddress: testFinal,
			Tokens:          150,
			Timestamp:       testTS,
			AvailSignature:  testSigAvail,
			EVMSignature:    testSigEVM,
		}
		second := &airdrop.RegisteredWallet{
			EVMAddress:      testEVM2,
			FinalEVMAddress: testFinal,
			Tokens:          25,
			Timestamp:       testTS,
			EVMSignature:    testSigEVM,
		}
		require.NoError(t, s.AppendRegistration(ctx, first))
		require.NoError(t, s.AppendRegistration(ctx, second))

		records, err := s.LoadRegistrations(ctx)
		require.NoError(t, err)
		require.Equal(t, []airdrop.RegisteredWallet{*first, *second}, records)
	})

	t.Run("duplicate sources", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{
			AvailAddress:    testAvail,
			EVMAddress:      testEVM,
			FinalEVMAddress: testFinal,
			Tokens:          150,
		}))

		err := s.AppendRegistration(ctx, &airdrop.RegisteredWallet{
			AvailAddress:    testAvail,
			FinalEVMAddress: testEVM2,
			Tokens:          100,
		})
		require.ErrorIs(t, err, ErrDuplicateSource)

		// EVM sources collide regardless of case
		err = s.AppendRegistration(ctx, &airdrop.RegisteredWallet{
			EVMAddress:      "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
			FinalEVMAddress: testFinal,
			Tokens:          50,
		})
		require.ErrorIs(t, err, ErrDuplicateSource)

		// A registered destination may still be used as a source elsewhere
		require.NoError(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{
			EVMAddress:      testFinal,
			FinalEVMAddress: testFinal,
			Tokens:          10,
		}))

		records, err := s.LoadRegistrations(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
	})

	t.Run("invalid record", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.ErrorIs(t, s.AppendRegistration(ctx, nil), ErrInvalidRecord)
		require.ErrorIs(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{FinalEVMAddress: testFinal}), ErrInvalidRecord)
		require.ErrorIs(t, s.AppendRegistration(ctx, &airdrop.RegisteredWallet{AvailAddress: testAvail}), ErrInvalidRecord)
	})

	t.Run("concurrent duplicates", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			failures  []error
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := s.AppendRegistration(ctx, &airdrop.RegisteredWallet{
					AvailAddress:    testAvail2,
					FinalEVMAddress: fmt.Sprintf("0x%040d", i),
					Tokens:          1,
				})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					succeeded++
					return
				}
				failures = append(failures, err)
			}(i)
		}
		wg.Wait()

		require.Equal(t, 1, succeeded)
		for _, err := range failures {
			require.True(t, errors.Is(err, ErrDuplicateSource), "unexpected error: %v", err)
		}

		records, err := s.LoadRegistrations(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}
