package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
	"github.com/financanvas/backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Monthly(ctx context.Context, userID uuid.UUID, input report.MonthlyInput) (*domain.MonthlyReport, error)
	MonthlyPDF(ctx context.Context, userID uuid.UUID, input report.MonthlyInput) ([]byte, error)
}

// ReportHandler serves reporting REST endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// monthlyInput reads year and month from the query string. Missing or
// non-numeric values become zero and fail service validation with the
// same field errors as out-of-range ones.
func monthlyInput(r *http.Request) report.MonthlyInput {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return report.MonthlyInput{Year: year, Month: month}
}

// Monthly handles GET /api/reports/monthly?year=YYYY&month=M.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	rep, err := h.svc.Monthly(r.Context(), userID, monthlyInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// MonthlyPDF handles GET /api/reports/monthly/pdf?year=YYYY&month=M.
func (h *ReportHandler) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	input := monthlyInput(r)
	doc, err := h.svc.MonthlyPDF(r.Context(), userID, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filename := fmt.Sprintf("report-%04d-%02d.pdf", input.Year, input.Month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc) //nolint:errcheck
}
