package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopfloor/cmd"
	"shopfloor/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logging.New(config.Env, config.LogLevel)

	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to release resources", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.SeedCatalog {
		if err := app.SeedCatalog(ctx); err != nil {
			log.Fatalf("Error seeding catalog: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err := startWebServer(ctx, app, config.HTTPPort); err != nil {
		logger.Error("HTTP server stopped", "error", err)
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	app.CreateServer().Register(e)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
