package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/affilink/creditmarket/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			CreditMarket API
//	@version		1.0
//	@description	Credit ledger and contact reveal API for the operator/affiliate marketplace

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	if err := application.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("Shutdown finished with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("Shutdown finished without errors")
}
