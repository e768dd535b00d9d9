package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/financanvas/backend/internal/adapter/postgres"
	categoryrepo "github.com/financanvas/backend/internal/adapter/postgres/category"
	investmentrepo "github.com/financanvas/backend/internal/adapter/postgres/investment"
	"github.com/financanvas/backend/internal/adapter/postgres/testhelper"
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
	"github.com/financanvas/backend/internal/transport/rest"
)

// newTestServer builds the full HTTP stack against a containerized database
// and returns its base URL.
func newTestServer(t *testing.T) string {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret-at-least-32-chars-long",
		JWTIssuer:        "financanvas",
		AccessTokenTTL:   time.Hour,
		RefreshTokenTTL:  24 * time.Hour,
		PasswordHashCost: 4,
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	categories := categoryrepo.New(pool)
	transactions := transactionrepo.New(pool)
	investments := investmentrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authSvc := auth.NewService(logger, users, tokens, postgres.NewTxManager(pool), jwtManager, authCfg)

	handler := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authSvc, logger),
		User:        rest.NewUserHandler(user.NewService(logger, users), logger),
		Category:    rest.NewCategoryHandler(category.NewService(logger, categories), logger),
		Transaction: rest.NewTransactionHandler(transaction.NewService(logger, transactions), logger),
		Investment:  rest.NewInvestmentHandler(investment.NewService(logger, investments), logger),
		Report:      rest.NewReportHandler(report.NewService(logger, transactions), logger),
		Health:      rest.NewHealthHandler(pool, "e2e"),
	}, rest.RouterOptions{
		Logger:    logger,
		Validator: authSvc,
		CORS:      config.CORSConfig{AllowedOrigins: "*"},
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv.URL
}

type client struct {
	t       *testing.T
	baseURL string
	token   string
}

func (c *client) do(method, path string, body any) (*http.Response, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	resp.Body.Close()

	return resp, raw
}

func (c *client) doJSON(method, path string, body any, wantStatus int, out any) {
	c.t.Helper()

	resp, raw := c.do(method, path, body)
	require.Equal(c.t, wantStatus, resp.StatusCode, "unexpected status for %s %s: %s", method, path, raw)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(raw, out))
	}
}

type authPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// register creates a fresh user and returns an authenticated client.
func register(t *testing.T, baseURL, email string) (*client, authPayload) {
	t.Helper()

	c := &client{t: t, baseURL: baseURL}

	var payload authPayload
	c.doJSON(http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"name":     "E2E Tester",
		"password": "password123",
	}, http.StatusCreated, &payload)

	require.NotEmpty(t, payload.AccessToken)
	require.NotEmpty(t, payload.RefreshToken)

	c.token = payload.AccessToken
	return c, payload
}
