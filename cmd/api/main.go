package main

import (
	"context"
	"fmt"
	mathrand "math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kaepilz/ghar-joy/internal/bargain"
	"github.com/Kaepilz/ghar-joy/internal/config"
	httpiface "github.com/Kaepilz/ghar-joy/internal/interface/http"
	"github.com/Kaepilz/ghar-joy/internal/mentor"
	"github.com/Kaepilz/ghar-joy/internal/rewards"
	"github.com/Kaepilz/ghar-joy/internal/storage"
	"github.com/Kaepilz/ghar-joy/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()
	log := logger.Sugar()

	ctx := context.Background()

	repo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatalw("snapshot backend failed to open", "backend", cfg.SnapshotBackend, "error", err)
	}
	defer repo.Close()
	log.Infow("snapshot backend ready", "backend", cfg.SnapshotBackend)

	st, err := store.Open(ctx, repo, log)
	if err != nil {
		log.Fatalw("store failed to open", "error", err)
	}

	if cfg.SeedDemo {
		if seeded := seedDemoData(st); seeded {
			log.Infow("demo data seeded")
		}
	}

	rng := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	handler := httpiface.NewHTTPHandler(httpiface.Options{
		Store:      st,
		Selector:   rewards.NewSelector(rng),
		Replier:    mentor.NewReplier(rng),
		Greeter:    bargain.NewGreeter(rng),
		Logger:     log,
		ThinkDelay: cfg.BotThinkDelay,
	})

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(httpiface.CORSMiddleware())

	limiter := httpiface.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	handler.RegisterRoutes(router, limiter)

	log.Infow("server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalw("server failed to start", "error", err)
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

// openRepository picks the snapshot backend from config.
func openRepository(ctx context.Context, cfg config.Config) (storage.Repository, error) {
	switch cfg.SnapshotBackend {
	case "file", "":
		return storage.NewFileRepository(cfg.SnapshotPath)
	case "sqlite":
		return storage.OpenSQL(ctx, storage.SQLOptions{
			Dialect:    storage.DialectSQLite,
			SQLitePath: cfg.SQLitePath,
		})
	case "mysql":
		return storage.OpenSQL(ctx, storage.SQLOptions{
			Dialect:                storage.DialectMySQL,
			MySQLUser:              cfg.MySQLUser,
			MySQLPassword:          cfg.MySQLPassword,
			MySQLDatabase:          cfg.MySQLDatabase,
			MySQLHost:              cfg.MySQLHost,
			MySQLPort:              cfg.MySQLPort,
			InstanceConnectionName: cfg.InstanceConnectionName,
		})
	case "postgres":
		return storage.OpenSQL(ctx, storage.SQLOptions{
			Dialect:     storage.DialectPostgres,
			PostgresDSN: cfg.PostgresDSN,
		})
	default:
		return nil, fmt.Errorf("unsupported SNAPSHOT_BACKEND %q", cfg.SnapshotBackend)
	}
}
