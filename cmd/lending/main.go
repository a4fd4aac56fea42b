package main

import (
	stdLog "log"
	"time"

	"github.com/bookhive/lending-service/lending/app"
	"github.com/bookhive/lending-service/lending/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title        Lending Service API
// @version      1.0
// @description  Book lending workflow: loan a book to a user, accept a returned book.
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
