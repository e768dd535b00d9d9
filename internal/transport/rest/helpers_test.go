package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/financanvas/backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authedRequest builds a request that already carries a user ID, the way the
// auth middleware leaves it for handlers behind /api.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(ctxutil.WithUserID(req.Context(), userID))
}
