package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
	"github.com/financanvas/backend/internal/service/investment"
)

// investmentService defines the minimal interface needed by InvestmentHandler.
type investmentService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error)
	Create(ctx context.Context, userID uuid.UUID, input investment.CreateInput) (*domain.Investment, error)
	Update(ctx context.Context, userID uuid.UUID, input investment.UpdateInput) (*domain.Investment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// InvestmentHandler serves investment REST endpoints.
type InvestmentHandler struct {
	svc investmentService
	log *slog.Logger
}

// NewInvestmentHandler creates an InvestmentHandler.
func NewInvestmentHandler(svc investmentService, logger *slog.Logger) *InvestmentHandler {
	return &InvestmentHandler{svc: svc, log: logger.With("handler", "investment")}
}

type investmentRequest struct {
	Asset         string      `json:"asset"`
	Quantity      json.Number `json:"quantity"`
	PurchasePrice json.Number `json:"purchasePrice"`
	PurchaseDate  string      `json:"purchaseDate"`
}

func (req investmentRequest) toCreateInput() investment.CreateInput {
	return investment.CreateInput{
		Asset:         req.Asset,
		Quantity:      parseAmount(req.Quantity),
		PurchasePrice: parseAmount(req.PurchasePrice),
		PurchaseDate:  parseDate(req.PurchaseDate),
	}
}

// List handles GET /api/investments.
func (h *InvestmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	list, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]investmentResponse, 0, len(list))
	for i := range list {
		out = append(out, toInvestmentResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/investments.
func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req investmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.svc.Create(r.Context(), userID, req.toCreateInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInvestmentResponse(inv))
}

// Update handles PUT /api/investments/{id}.
func (h *InvestmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req investmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := req.toCreateInput()
	inv, err := h.svc.Update(r.Context(), userID, investment.UpdateInput{
		ID:            id,
		Asset:         in.Asset,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		PurchaseDate:  in.PurchaseDate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvestmentResponse(inv))
}

// Delete handles DELETE /api/investments/{id}.
func (h *InvestmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
