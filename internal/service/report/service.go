// Package report builds monthly summaries out of the user's active
// transactions.
package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/adapter/postgres/transaction"
	"github.com/financanvas/backend/internal/domain"
)

type transactionRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*domain.TransactionWithCategory, error)
}

// Service provides report generation.
type Service struct {
	transactions transactionRepo
	log          *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, transactions transactionRepo) *Service {
	return &Service{
		transactions: transactions,
		log:          log.With("service", "report"),
	}
}

// MonthlyInput holds the parameters for a monthly report.
type MonthlyInput struct {
	Year  int
	Month int
}

// Validate checks the year and month ranges before anything touches the
// database.
func (i MonthlyInput) Validate() error {
	var errs []domain.FieldError

	if i.Year < domain.ReportMinYear || i.Year > domain.ReportMaxYear {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
