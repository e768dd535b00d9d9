// Package app wires configuration, storage, services and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/financanvas/backend/internal/adapter/postgres"
	categoryrepo "github.com/financanvas/backend/internal/adapter/postgres/category"
	investmentrepo "github.com/financanvas/backend/internal/adapter/postgres/investment"
	tokenrepo "github.com/financanvas/backend/internal/adapter/postgres/token"
	transactionrepo "github.com/financanvas/backend/internal/adapter/postgres/transaction"
	userrepo "github.com/financanvas/backend/internal/adapter/postgres/user"
	jwtauth "github.com/financanvas/backend/internal/auth"
	"github.com/financanvas/backend/internal/config"
	"github.com/financanvas/backend/internal/service/auth"
	"github.com/financanvas/backend/internal/service/category"
	"github.com/financanvas/backend/internal/service/investment"
	"github.com/financanvas/backend/internal/service/report"
	"github.com/financanvas/backend/internal/service/transaction"
	"github.com/financanvas/backend/internal/service/user"
	"github.com/financanvas/backend/internal/transport/middleware"
	"github.com/financanvas/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	categories := categoryrepo.New(pool)
	transactions := transactionrepo.New(pool)
	investments := investmentrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Revocation only flips revoked_at; expired rows are swept at startup.
	if n, err := tokens.DeleteExpired(ctx); err != nil {
		logger.Warn("expired token sweep failed", slog.String("error", err.Error()))
	} else if n > 0 {
		logger.Info("expired refresh tokens removed", slog.Int("count", n))
	}

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := auth.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	userSvc := user.NewService(logger, users)
	categorySvc := category.NewService(logger, categories)
	transactionSvc := transaction.NewService(logger, transactions)
	investmentSvc := investment.NewService(logger, investments)
	reportSvc := report.NewService(logger, transactions)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	handler := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authSvc, logger),
		User:        rest.NewUserHandler(userSvc, logger),
		Category:    rest.NewCategoryHandler(categorySvc, logger),
		Transaction: rest.NewTransactionHandler(transactionSvc, logger),
		Investment:  rest.NewInvestmentHandler(investmentSvc, logger),
		Report:      rest.NewReportHandler(reportSvc, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
	}, rest.RouterOptions{
		Logger:         logger,
		Validator:      authSvc,
		CORS:           cfg.CORS,
		RateLimiter:    rateLimiter,
		LoginPerMinute: cfg.RateLimit.LoginPerMinute,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
