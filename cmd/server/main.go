package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/config"
	"github.com/marquee-dev/marquee/internal/app"
	"github.com/marquee-dev/marquee/internal/logger"
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

	application, err := app.New(cfg, zl)
	if err != nil {
		zl.Fatal("create application", zap.Error(err))
	}

	if err := application.Run(context.Background()); err != nil {
		zl.Fatal("application finished with error", zap.Error(err))
	}
}
