package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leadflow/crm/internal/config"
	"github.com/leadflow/crm/internal/infra"
	"github.com/leadflow/crm/internal/repository"
	"github.com/sirupsen/logrus"
)

const DefaultShutdownTimeout = 10 * time.Second
const DefaultConnectTimeout = 5 * time.Second

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Build()
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	leadRepo, closeStorage, err := leadRepository(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to connect to lead storage - %s", err)
	}
	defer closeStorage()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		logger.Fatalf("failed to connect to redis - %s", err)
	}
	defer redisClient.Close()

	app, err := infra.Router(cfg.LeadCfg, leadRepo, redisClient, logger)
	if err != nil {
		logger.Fatal(err)
	}

	start(app, cfg.HTTPCfg.Port, logger)
}

func leadRepository(ctx context.Context, cfg config.Config) (repository.LeadRepository, func(), error) {
	if cfg.LeadCfg.StorageDriver == config.StorageDriverPostgres {
		pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresLeadRepository(pool), pool.Close, nil
	}

	client, err := infra.Mongodb(ctx, cfg.MongoCfg)
	if err != nil {
		return nil, nil, err
	}
	disconnect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logrus.Errorf("failed to disconnect from mongodb - %s", err)
		}
	}
	return repository.NewMongoLeadRepository(client, cfg.MongoCfg.Database), disconnect, nil
}

func start(app *echo.Echo, port int, logger *logrus.Logger) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
