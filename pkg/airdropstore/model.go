package airdropstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

// EligibleAddressDao maps to the 'eligible_addresses' table in PostgreSQL.
// AddressKey is the address in its comparison form (lowercase for EVM).
type EligibleAddressDao struct {
	bun.BaseModel `bun:"table:eligible_addresses,alias:ea"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Chain         string    `bun:"chain,notnull,type:varchar(8),unique:uq_eligible_chain_address"`
	AddressKey    string    `bun:"address_key,notnull,type:varchar(64),unique:uq_eligible_chain_address"`
	Address       string    `bun:"address,notnull,type:varchar(64)"`
	Tokens        uint64    `bun:"tokens,notnull,type:bigint"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toEligibleAddressDao(chain airdrop.Chain, e airdrop.EligibilityEntry) *EligibleAddressDao {
	return &EligibleAddressDao{
		Chain:      string(chain),
		AddressKey: chain.NormalizeAddress(e.Address),
		Address:    e.Address,
		Tokens:     e.Tokens,
	}
}

func toEligibilityEntry(dao *EligibleAddressDao) airdrop.EligibilityEntry {
	return airdrop.EligibilityEntry{Address: dao.Address, Tokens: dao.Tokens}
}

// RegisteredWalletDao maps to the 'registered_wallets' table in PostgreSQL.
// Absent sources are stored as NULL so the unique constraints only bind
// registered sources.
type RegisteredWalletDao struct {
	bun.BaseModel   `bun:"table:registered_wallets,alias:rw"`
	ID              int64     `bun:"id,pk,autoincrement"`
	AvailAddress    *string   `bun:"avail_address,unique,type:varchar(64)"`
	EVMAddress      *string   `bun:"evm_address,type:varchar(42)"`
	EVMAddressKey   *string   `bun:"evm_address_key,unique,type:varchar(42)"`
	FinalEVMAddress string    `bun:"final_evm_address,notnull,type:varchar(42)"`
	Tokens          uint64    `bun:"tokens,notnull,type:bigint"`
	Timestamp       string    `bun:"timestamp,notnull,type:varchar(64)"`
	AvailSignature  string    `bun:"avail_signature,notnull,type:text"`
	EVMSignature    string    `bun:"evm_signature,notnull,type:text"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toRegisteredWalletDao(rec *airdrop.RegisteredWallet) *RegisteredWalletDao {
	dao := &RegisteredWalletDao{
		FinalEVMAddress: rec.FinalEVMAddress,
		Tokens:          rec.Tokens,
		Timestamp:       rec.Timestamp,
		AvailSignature:  rec.AvailSignature,
		EVMSignature:    rec.EVMSignature,
	}

	if rec.AvailAddress != "" {
		avail := rec.AvailAddress
		dao.AvailAddress = &avail
	}
	if rec.EVMAddress != "" {
		evm := rec.EVMAddress
		key := airdrop.ChainEVM.NormalizeAddress(evm)
		dao.EVMAddress = &evm
		dao.EVMAddressKey = &key
	}

	return dao
}

func toRegisteredWallet(dao *RegisteredWalletDao) airdrop.RegisteredWallet {
	rec := airdrop.RegisteredWallet{
		FinalEVMAddress: dao.FinalEVMAddress,
		Tokens:          dao.Tokens,
		Timestamp:       dao.Timestamp,
		AvailSignature:  dao.AvailSignature,
		EVMSignature:    dao.EVMSignature,
	}

	if dao.AvailAddress != nil {
		rec.AvailAddress = *dao.AvailAddress
	}
	if dao.EVMAddress != nil {
		rec.EVMAddress = *dao.EVMAddress
	}

	return rec
}
