package airdropstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/airdrop-registry/pkg/pgutil"
	mghelper "github.com/chainsafe/airdrop-registry/pkg/pgutil/migrations"
)

func TestPGStore(t *testing.T) {
	pgutil.RequireDocker(t)

	runStoreSuite(t, func(t *testing.T) Store {
		ctx := context.Background()
		db, cleanup := pgutil.SetupTestDB(t)
		t.Cleanup(cleanup)

		require.NoError(t, mghelper.CreateSchema(ctx, db, &EligibleAddressDao{}, &RegisteredWalletDao{}))
		return NewPGStore(db)
	})
}
