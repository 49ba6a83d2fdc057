// Command eventify serves the Eventify web client's views as JSON under /api.
//
//	@title			Eventify API
//	@version		1.0
//	@description	Event discovery and booking views backed by the remote Eventify API.
//	@BasePath		/api
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/spf13/pflag"

	"eventify/config"
	_ "eventify/docs"
	"eventify/internal/adapters/localstore"
	"eventify/internal/adapters/remoteapi"
	deliveryhttp "eventify/internal/delivery/http"
	"eventify/internal/delivery/http/controllers"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/domain"
	"eventify/internal/repository/postgres"
	"eventify/internal/services"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "eventify: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flagSet := pflag.NewFlagSet("eventify", pflag.ContinueOnError)
	cfg.AddClientFlags(flagSet)
	showHelp := flagSet.BoolP("help", "h", false, "show this help")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}
	if *showHelp {
		fmt.Fprintln(os.Stderr, "Usage: eventify [flags]")
		flagSet.PrintDefaults()
		return pflag.ErrHelp
	}

	logger := config.NewLogger("eventify")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	persister, closePersister, err := newPersister(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closePersister()

	apiClient := remoteapi.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPClientTimeout})
	sessionStore := services.NewSessionStore(ctx, apiClient, persister, logger)
	catalog := services.NewCatalogService(apiClient, logger, cfg.HTTPClientTimeout)
	bookings := services.NewBookingBoard(services.SampleBookings())

	router := deliveryhttp.NewRouter(
		controllers.NewEventsController(logger, catalog, sessionStore),
		controllers.NewSessionController(logger, sessionStore),
		controllers.NewDashboardController(logger, sessionStore, bookings),
		sessionStore,
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, router))

	logger.Info("starting web client", "api_base_url", cfg.APIBaseURL, "session_store", cfg.SessionStore)
	return deliveryhttp.Serve(ctx, ":"+cfg.Port, handler, logger)
}

func newPersister(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.SessionPersister, func(), error) {
	switch cfg.SessionStore {
	case config.SessionStoreFile:
		logger.Info("persisting session to file", "path", cfg.SessionFile)
		return localstore.NewFileStore(cfg.SessionFile, cfg.StorageKey), func() {}, nil
	case config.SessionStorePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		repo := postgres.NewClientStateRepository(db, cfg.StorageKey)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("persisting session to postgres")
		return repo, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
