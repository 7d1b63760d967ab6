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
		log.Println("creating registered_wallets table...")
		if err := mghelper.CreateSchema(ctx, db, &airdropstore.RegisteredWalletDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &airdropstore.RegisteredWalletDao{}, "final_evm_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping registered_wallets table...")
		return mghelper.DropTables(ctx, db, &airdropstore.RegisteredWalletDao{})
	})
}
