package main

import (
	"context"
	"flag"
	"os"

	"github.com/yungbote/supplyplan-backend/internal/db"
	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/seed"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to a YAML seed fixture (default: built-in demo set)")
	flag.Parse()

	mode := os.Getenv("LOG_MODE")
	if mode == "" {
		mode = "development"
	}
	log, err := logger.New(mode)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	dbs, err := db.New(log)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := dbs.AutoMigrateAll(); err != nil {
		log.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	fixture, err := seed.Load(*fixturePath)
	if err != nil {
		log.Error("Failed to load fixture", "error", err)
		os.Exit(1)
	}

	seeder := seed.NewSeeder(dbs.DB(), log)
	if err := seeder.Apply(context.Background(), fixture); err != nil {
		log.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}
