// catalogd is the catalog API server and its operational commands.
//
// Subcommands:
//
//	serve         run the HTTP server (default when no subcommand given)
//	migrate       apply database migrations
//	create-admin  provision an admin account
//	seed          insert the starter product set
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sarhadcorp/catalog-api/internal/config"
	"github.com/sarhadcorp/catalog-api/internal/database"
	"github.com/sarhadcorp/catalog-api/internal/handler"
	"github.com/sarhadcorp/catalog-api/internal/logger"
	"github.com/sarhadcorp/catalog-api/internal/middleware"
	"github.com/sarhadcorp/catalog-api/internal/repository"
	"github.com/sarhadcorp/catalog-api/internal/router"
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:          "catalogd",
		Short:        "Product catalog API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}

	root.AddCommand(serveCmd, migrateCmd, newCreateAdminCommand(), newSeedCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads config and builds the application container shared by
// every subcommand.
func bootstrap() (*server.Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Console logger for the bootstrap phase, before the real logger exists.
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	loggerService := logger.NewLoggerService(cfg, &bootLogger)
	log := logger.New(cfg, loggerService)

	return server.New(cfg, log, loggerService)
}

func runServe() error {
	srv, err := bootstrap()
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(handlers, middlewares))

	// Serve until a shutdown signal arrives, then drain gracefully.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		srv.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}

func runMigrate(ctx context.Context) error {
	srv, err := bootstrap()
	if err != nil {
		return err
	}

	return database.Migrate(ctx, srv.Logger, srv.Config)
}
