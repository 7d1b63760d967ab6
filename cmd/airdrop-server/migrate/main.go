package main

import (
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/airdrop-registry/pkg/config"
	"github.com/chainsafe/airdrop-registry/pkg/migrations/airdropdb"
	"github.com/chainsafe/airdrop-registry/pkg/pgutil"
	mghelper "github.com/chainsafe/airdrop-registry/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	db, err := pgutil.ConnectDB(&cfg.Database, nil)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for airdrop registry database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, airdropdb.Migrations)

	err = mghelper.RunMigrations(migrator, flag.Args()...)
	if err != nil {
		mghelper.Exitf(err.Error())
	}
}
