package airdropdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/airdrop-registry/pkg/airdropstore"
	mghelper "github.com/chainsafe/airdrop-registry/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating eligible_addresses table...")
		if err := mghelper.CreateSchema(ctx, db, &airdropstore.EligibleAddressDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &airdropstore.EligibleAddressDao{}, "chain")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping eligible_addresses table...")
		return mghelper.DropTables(ctx, db, &airdropstore.EligibleAddressDao{})
	})
}
