package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/config"
	"github.com/financanvas/backend/internal/transport/middleware"
)

// TokenValidator resolves a Bearer access token into a user ID. The auth
// service implements it.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Category    *CategoryHandler
	Transaction *TransactionHandler
	Investment  *InvestmentHandler
	Report      *ReportHandler
	Health      *HealthHandler
}

// RouterOptions carries the cross-cutting pieces the router wires around
// the handlers.
type RouterOptions struct {
	Logger         *slog.Logger
	Validator      TokenValidator
	CORS           config.CORSConfig
	RateLimiter    *middleware.RateLimiter
	LoginPerMinute int
}

// NewRouter mounts all routes. Health probes and register/login/refresh are
// public; everything under /api and /auth/logout requires a valid access
// token. Login and register share a per-IP rate limit.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(opts.Validator)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	limitLogin := middleware.Chain()
	if opts.RateLimiter != nil && opts.LoginPerMinute > 0 {
		limitLogin = opts.RateLimiter.Limit(opts.LoginPerMinute)
	}
	mux.Handle("POST /auth/register", limitLogin(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", limitLogin(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.Handle("POST /auth/logout", requireAuth(http.HandlerFunc(h.Auth.Logout)))

	api := http.NewServeMux()
	api.HandleFunc("GET /api/users/me", h.User.GetMe)
	api.HandleFunc("PUT /api/users/profile", h.User.UpdateProfile)

	api.HandleFunc("GET /api/categories", h.Category.List)
	api.HandleFunc("POST /api/categories", h.Category.Create)

	api.HandleFunc("GET /api/transactions", h.Transaction.List)
	api.HandleFunc("POST /api/transactions", h.Transaction.Create)
	api.HandleFunc("GET /api/transactions/trash", h.Transaction.ListTrash)
	api.HandleFunc("GET /api/transactions/{id}", h.Transaction.Get)
	api.HandleFunc("PUT /api/transactions/{id}", h.Transaction.Update)
	api.HandleFunc("DELETE /api/transactions/{id}", h.Transaction.Delete)
	api.HandleFunc("PATCH /api/transactions/{id}/restore", h.Transaction.Restore)

	api.HandleFunc("GET /api/investments", h.Investment.List)
	api.HandleFunc("POST /api/investments", h.Investment.Create)
	api.HandleFunc("PUT /api/investments/{id}", h.Investment.Update)
	api.HandleFunc("DELETE /api/investments/{id}", h.Investment.Delete)

	api.HandleFunc("GET /api/reports/monthly", h.Report.Monthly)
	api.HandleFunc("GET /api/reports/monthly/pdf", h.Report.MonthlyPDF)

	mux.Handle("/api/", requireAuth(api))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.CORS),
	)(mux)
}
