// Package airdropdb holds all the migrations for the airdrop registry database
package airdropdb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered migration set, populated by the init functions
// of the numbered files in this package.
var Migrations = migrate.NewMigrations()
