// Command eventify-devapi is an in-memory stand-in for the remote Eventify
// API, for running the web client locally.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"eventify/config"
	"eventify/internal/adapters/auth"
	"eventify/internal/adapters/email"
	deliveryhttp "eventify/internal/delivery/http"
	"eventify/internal/delivery/http/controllers"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/repository/memory"
	"eventify/internal/services"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "eventify-devapi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flagSet := pflag.NewFlagSet("eventify-devapi", pflag.ContinueOnError)
	cfg.AddDevAPIFlags(flagSet)
	showHelp := flagSet.BoolP("help", "h", false, "show this help")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}
	if *showHelp {
		fmt.Fprintln(os.Stderr, "Usage: eventify-devapi [flags]")
		flagSet.PrintDefaults()
		return pflag.ErrHelp
	}

	logger := config.NewLogger("eventify-devapi")

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:          cfg.Mail.Region,
			AccessKeyID:     cfg.Mail.AccessKeyID,
			SecretAccessKey: cfg.Mail.SecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("creating mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("loading email templates: %w", err)
	}

	tokens := auth.NewJWT(cfg.JWTSecret, cfg.JWTExpiry)
	accounts := services.NewAccountService(
		memory.NewAccountRepository(),
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		tokens,
		cfg.JWTExpiry,
		services.NewEmailService(mailer, renderer, logger),
		logger,
	)

	router := deliveryhttp.NewDevAPIRouter(
		controllers.NewDevAPIController(logger, accounts, services.SampleEvents),
		tokens,
		logger,
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, router))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting development API", "mail_provider", cfg.Mail.Provider)
	return deliveryhttp.Serve(ctx, ":"+cfg.DevAPIPort, handler, logger)
}
