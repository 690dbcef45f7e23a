package app

import (
	"context"
	"time"

	"aparthotel/internal/config"
	"aparthotel/internal/middleware"
	"aparthotel/internal/shared/connection"
	"aparthotel/internal/shared/storage"
	"aparthotel/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const uploadsPrefix = "/uploads"

// BuildApp connects the infrastructure, migrates the schema and mounts every
// module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(cfg, 5)
	if err != nil {
		return err
	}
	if err := migrate(db); err != nil {
		return err
	}
	logger.Info("schema migrated")

	if err := seedManager(context.Background(), user.NewRepository(db), cfg, logger); err != nil {
		return err
	}

	// Redis backs the unit list cache and idempotency keys; both degrade
	// to pass-through when it is not configured.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg, 5)
		if err != nil {
			return err
		}
	} else {
		logger.Warn("REDIS_ADDR not set, running without cache")
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	if local, ok := store.(*storage.LocalStore); ok {
		router.Static(uploadsPrefix, local.Root())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.GlobalRateLimit(cfg.RateLimitPerMinute))

	return registerModules(router, cfg, db, rdb, store)
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3Store(
			context.Background(),
			cfg.S3Region,
			cfg.S3Endpoint,
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			cfg.S3Bucket,
			cfg.S3PublicURL,
		)
	}
	return storage.NewLocalStore(cfg.UploadDir, uploadsPrefix)
}
