package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/ratelimit"
	"github.com/carson-networks/finance-server/internal/rates"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	tokens := auth.NewTokenManager(envConfig.JWTSecret, time.Duration(envConfig.JWTExpirySeconds)*time.Second)
	svc := service.NewService(dbStorage, tokens, delegator)

	limiter := ratelimit.NewLimiter(envConfig.RateLimitPerMinute)
	defer limiter.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
			Tokens:  tokens,
			Rates:   rates.NewClient(envConfig.ExchangeRateAPIKey),
			Limiter: limiter,
		}
		return httpRest.Serve(ctx)
	})

	if err := group.Wait(); err != nil {
		logrus.WithError(err).Error("finance-server exited with error")
		return
	}
	logrus.Info("finance-server stopped")
}
