package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financanvas/backend/internal/domain"
	"github.com/financanvas/backend/internal/service/transaction"
)

// transactionService defines the minimal interface needed by TransactionHandler.
type transactionService interface {
	Create(ctx context.Context, userID uuid.UUID, input transaction.CreateInput) (*domain.TransactionWithCategory, error)
	Update(ctx context.Context, userID uuid.UUID, input transaction.UpdateInput) (*domain.TransactionWithCategory, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.TransactionWithCategory, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.TransactionWithCategory, error)
	ListTrashed(ctx context.Context, userID uuid.UUID) ([]*domain.TransactionWithCategory, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
	Restore(ctx context.Context, userID, id uuid.UUID) error
}

// TransactionHandler serves transaction REST endpoints.
type TransactionHandler struct {
	svc transactionService
	log *slog.Logger
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(svc transactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, log: logger.With("handler", "transaction")}
}

type transactionRequest struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Type        string      `json:"type"`
	Date        string      `json:"date"`
	CategoryID  string      `json:"categoryId"`
}

// parseAmount tolerates a missing or malformed amount by returning zero;
// the service layer reports it as a field error alongside any others.
func parseAmount(raw json.Number) decimal.Decimal {
	d, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(raw string) time.Time {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return ts
	}
	return time.Time{}
}

func (req transactionRequest) toCreateInput() transaction.CreateInput {
	categoryID, _ := uuid.Parse(req.CategoryID)
	return transaction.CreateInput{
		Description: req.Description,
		Amount:      parseAmount(req.Amount),
		Type:        domain.TransactionType(req.Type),
		Date:        parseDate(req.Date),
		CategoryID:  categoryID,
	}
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	list, err := h.svc.ListActive(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponses(list))
}

// ListTrash handles GET /api/transactions/trash.
func (h *TransactionHandler) ListTrash(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	list, err := h.svc.ListTrashed(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponses(list))
}

// Get handles GET /api/transactions/{id}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	tx, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(tx))
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.svc.Create(r.Context(), userID, req.toCreateInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

// Update handles PUT /api/transactions/{id}.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := req.toCreateInput()
	tx, err := h.svc.Update(r.Context(), userID, transaction.UpdateInput{
		ID:          id,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        in.Date,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(tx))
}

// Delete handles DELETE /api/transactions/{id}. Moving a transaction to the
// trash is idempotent, so the response is 204 whether or not anything moved.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.SoftDelete(r.Context(), userID, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles PATCH /api/transactions/{id}/restore.
func (h *TransactionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Restore(r.Context(), userID, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
