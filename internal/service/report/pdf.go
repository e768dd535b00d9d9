package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"

	"github.com/financanvas/backend/internal/domain"
)

const pdfMaxRows = 200

// MonthlyPDF renders the monthly report as a downloadable PDF statement.
func (s *Service) MonthlyPDF(ctx context.Context, userID uuid.UUID, input MonthlyInput) ([]byte, error) {
	report, err := s.Monthly(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	period := fmt.Sprintf("%04d-%02d", report.Year, int(report.Month))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FinanCanvas Monthly Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+period)
	pdf.Ln(10)

	// Summary row.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, report.TotalIncome.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, report.TotalExpense.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, report.Balance.StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Expense breakdown, in first-seen category order.
	if report.ExpensesByCategory.Len() > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(124, 8, "CATEGORY", "1", 0, "L", true, 0, "")
		pdf.CellFormat(62, 8, "EXPENSES", "1", 1, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, e := range report.ExpensesByCategory.Entries() {
			pdf.CellFormat(124, 8, trimTo(e.Category, 90), "1", 0, "L", false, 0, "")
			pdf.CellFormat(62, 8, e.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	// Transaction table.
	writeTxHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(22, 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(26, 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(70, 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
		pdf.CellFormat(38, 8, "CATEGORY", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(30, 30, 30)
	}
	writeTxHeader()

	for i, tx := range report.Transactions {
		if i >= pdfMaxRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "…truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}

		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeTxHeader()
		}

		amount := tx.Amount.StringFixed(2)
		if tx.Type == domain.TransactionExpense {
			amount = "-" + amount
		}

		pdf.CellFormat(22, 8, tx.Type.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 8, tx.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 8, trimTo(tx.Description, 50), "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 8, trimTo(tx.Category.Name, 26), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, amount, "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated by FinanCanvas • "+time.Now().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// trimTo truncates on runes so multibyte names stay valid UTF-8.
func trimTo(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-1]) + "…"
}
