package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xw1nchester/foodcatalog-backend/internal/app"
	"github.com/xw1nchester/foodcatalog-backend/internal/config"
	"github.com/xw1nchester/foodcatalog-backend/internal/logging"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

//	@title						Food Catalog API
//	@version					1.0
//	@BasePath					/api
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer access token from /auth/login

func main() {
	cfg := config.MustLoad()

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(ctx, log, *cfg)

	go application.MustRun()

	<-ctx.Done()

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return
	}

	log.Info("server stopped")
}
