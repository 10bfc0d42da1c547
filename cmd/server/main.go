package main

import (
	"context"

	"github.com/aretelab/arete-api/internal/api"
	"github.com/aretelab/arete-api/internal/infrastructure/config"
	mongostore "github.com/aretelab/arete-api/internal/infrastructure/db/mongo"
	redisstore "github.com/aretelab/arete-api/internal/infrastructure/db/redis"
	"github.com/aretelab/arete-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	// Unique indexes back the duplicate-email and duplicate-generation
	// guarantees; refuse to serve without them.
	if err := mongostore.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index setup failed")
	}
	if err := mongostore.NewChallengeRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("challenge index setup failed")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(cfg, db, rdb, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
