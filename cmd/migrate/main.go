package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/ingrecipe/backend/config"
	"github.com/pageza/ingrecipe/backend/internal/database"
	"github.com/pageza/ingrecipe/backend/internal/logger"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Drop the recipes schema instead of migrating it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.FromConfig(cfg))
	defer log.Sync()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if *rollback {
		if err := database.RollbackMigrations(db); err != nil {
			log.Fatal("failed to roll back migrations", zap.Error(err))
		}
		log.Info("recipes schema dropped")
		return
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("failed to apply migrations", zap.Error(err))
	}
	log.Info("all migrations applied successfully", zap.String("driver", cfg.DBDriver))
}
