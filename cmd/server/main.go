package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/calora/calorie-tracker/internal/api"
	"github.com/calora/calorie-tracker/internal/core/ports"
	"github.com/calora/calorie-tracker/internal/core/service"
	"github.com/calora/calorie-tracker/internal/infrastructure/config"
	mongodb "github.com/calora/calorie-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/calora/calorie-tracker/internal/infrastructure/db/redis"
	"github.com/calora/calorie-tracker/internal/infrastructure/http/handlers"
	"github.com/calora/calorie-tracker/internal/infrastructure/queue"
	"github.com/calora/calorie-tracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Calora API
// @version                     1.0
// @description                 Calorie tracking: free-text food logging with rule-based nutrient estimation, per-day aggregation and maintenance-calorie balance.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		return err
	}
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:                    cfg.Mongo.URI,
		Database:               cfg.Mongo.Database,
		MaxPoolSize:            cfg.Mongo.MaxPoolSize,
		ServerSelectionTimeout: cfg.Mongo.ServerSelectionTimeout,
		SocketTimeout:          cfg.Mongo.SocketTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	entryRepo := mongodb.NewEntryRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	if err := mongodb.EnsureIndexes(ctx, entryRepo, userRepo); err != nil {
		return err
	}
	readiness := []handlers.Dependency{handlers.MongoCheck(db)}

	// --- Redis stats cache (optional) ---
	var cache ports.StatsCache
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)
		cache = redisdb.NewStatsCache(rdb, cfg.Redis.StatsTTL)
		readiness = append(readiness, handlers.RedisCheck(rdb))
	}

	// --- Entry events ---
	var publisher ports.EventPublisher
	if cfg.Events.AMQPURL != "" {
		amqpPub := queue.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Queue)
		defer func() {
			if err := amqpPub.Close(); err != nil {
				log.Warn().Err(err).Msg("amqp close failed")
			}
		}()
		publisher = amqpPub
	}
	eventLog := logger.Component(log, "events")
	dispatcher := queue.NewDispatcher(cfg.Events.Workers, service.NewEventService(publisher, eventLog), eventLog)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	dispatcher.Start(workerCtx)

	// --- Services & HTTP ---
	entrySvc := service.NewEntryService(entryRepo, userRepo, cache, dispatcher, loc, logger.Component(log, "entries"))
	userSvc := service.NewUserService(userRepo, entryRepo, cache, loc, logger.Component(log, "users"))
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(api.Deps{
		Entries:   entrySvc,
		Users:     userSvc,
		Auth:      authSvc,
		Readiness: readiness,
		JWTSecret: cfg.JWTSecret,
		Log:       logger.Component(log, "http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close failed")
	}
}
