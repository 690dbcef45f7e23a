package main

import (
	"aparthotel/internal/app"
	"aparthotel/internal/config"
	"aparthotel/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
