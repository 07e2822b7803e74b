package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"saas-admin.backend/internal/app"
	"saas-admin.backend/internal/config"
	"saas-admin.backend/internal/infrastructure/datasources/postgres"
	"saas-admin.backend/pkg/logger"
	"saas-admin.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		sqlDB, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.OpenGorm(sqlDB)
	}
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "deploysync",
		Short: "Import hardhat deployment artifacts into the admin record store",
		Long: `deploysync reads a hardhat-deploy deployments folder and records every
network, contract, ABI, event listener and diamond it describes for one organization.

Run "deploysync schema" once against a fresh database before the first sync.`,
		SilenceUsage: true,
	}

	root.AddGroup(&cobra.Group{ID: "import", Title: "Import Commands"})
	root.AddGroup(&cobra.Group{ID: "management", Title: "Management Commands"})

	root.AddCommand(newSyncCmd(), newSelectorsCmd(), newSchemaCmd(), newPurgeCmd())
	return root
}

// bootstrap wires the import pipeline from the environment. cleanup closes RPC clients and the database.
func bootstrap() (*app.App, func(), error) {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	initLog(cfg.Server.Env)

	var redisClient *goredis.Client
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		redisClient = redis.GetClient()
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := app.New(cfg, db, redisClient, nil)
	cleanup := func() {
		a.Close()
		logger.Sync()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return a, cleanup, nil
}
