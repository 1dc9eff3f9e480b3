// Package main is the entry point for the order-approval API.
package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/orderdesk/approval-system/docs"
	"github.com/orderdesk/approval-system/internal/api"
	"github.com/orderdesk/approval-system/internal/infrastructure/config"
	mongodb "github.com/orderdesk/approval-system/internal/infrastructure/db/mongo"
	redisdb "github.com/orderdesk/approval-system/internal/infrastructure/db/redis"
	"github.com/orderdesk/approval-system/pkg/logger"
)

// @title Order Approval API
// @version 1.0
// @description Role-scoped order-approval workflow: submitters create orders,
// @description managers approve or reject them, accountants read the approved ledger.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create account indexes")
	}
	if err := mongodb.NewOrderRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create order indexes")
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting order-approval api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
