package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financanvas/backend/internal/adapter/postgres/transaction"
	"github.com/financanvas/backend/internal/domain"
)

// Monthly aggregates the user's active transactions inside the given month.
//
// Trashed transactions never enter the report: deleting one immediately
// shrinks the expense totals, restoring it brings the original numbers back.
// The expense breakdown keeps categories in the order they first appear in
// the listing.
func (s *Service) Monthly(ctx context.Context, userID uuid.UUID, input MonthlyInput) (*domain.MonthlyReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start, end := domain.MonthRange(input.Year, time.Month(input.Month))

	list, err := s.transactions.List(ctx, userID, transaction.ListFilter{From: &start, To: &end})
	if err != nil {
		return nil, fmt.Errorf("list transactions for report: %w", err)
	}

	report := &domain.MonthlyReport{
		Year:         input.Year,
		Month:        time.Month(input.Month),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Transactions: make([]domain.TransactionWithCategory, 0, len(list)),
	}

	for _, tx := range list {
		report.Transactions = append(report.Transactions, *tx)

		switch tx.Type {
		case domain.TransactionIncome:
			report.TotalIncome = report.TotalIncome.Add(tx.Amount)
		case domain.TransactionExpense:
			report.TotalExpense = report.TotalExpense.Add(tx.Amount)
			report.ExpensesByCategory.Add(tx.Category.Name, tx.Amount)
		}
	}
	report.Balance = report.TotalIncome.Sub(report.TotalExpense)

	s.log.DebugContext(ctx, "monthly report built",
		slog.String("user_id", userID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.Int("transactions", len(list)),
	)

	return report, nil
}
