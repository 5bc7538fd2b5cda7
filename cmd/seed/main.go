package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/jchairstudios/catalog-backend/internal/catalog"
	"github.com/jchairstudios/catalog-backend/internal/catalog/seed"
	"github.com/jchairstudios/catalog-backend/pkg/config"
	"github.com/jchairstudios/catalog-backend/pkg/db"
	"github.com/jchairstudios/catalog-backend/pkg/logger"
	"github.com/jchairstudios/catalog-backend/pkg/migrate"
	"github.com/jchairstudios/catalog-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	snapshotCache, err := catalog.NewSnapshotCache(redisClient, cfg.Catalog.SnapshotTTL)
	if err != nil {
		logg.Error(ctx, "failed to create snapshot cache", err)
		os.Exit(1)
	}

	seeder, err := seed.NewSeeder(catalog.NewRepository(dbClient.DB()), snapshotCache, logg)
	if err != nil {
		logg.Error(ctx, "failed to create seeder", err)
		os.Exit(1)
	}

	if err := seeder.Run(ctx); err != nil {
		logg.Error(ctx, "seeding finished with errors", err)
		os.Exit(1)
	}

	logg.Info(ctx, "catalog seeded")
}
