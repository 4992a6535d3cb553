package main

import (
	"log"

	"github.com/marquee-dev/marquee/config"
	"github.com/marquee-dev/marquee/internal/database"
	"github.com/marquee-dev/marquee/internal/logger"
	"github.com/marquee-dev/marquee/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := seed.New(db, zl, cfg.BcryptCost).Run(); err != nil {
		log.Fatalf("seed: %v", err)
	}
}
