package rest

import (
	"encoding/json"
	"time"

	"github.com/financanvas/backend/internal/domain"
)

type userResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID.String(), Name: c.Name}
}

type transactionResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Amount      json.Number      `json:"amount"`
	Type        string           `json:"type"`
	Date        string           `json:"date"`
	CategoryID  string           `json:"categoryId"`
	Category    categoryResponse `json:"category"`
	DeletedAt   *string          `json:"deletedAt,omitempty"`
}

func toTransactionResponse(tx *domain.TransactionWithCategory) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      json.Number(tx.Amount.String()),
		Type:        tx.Type.String(),
		Date:        tx.Date.UTC().Format(time.RFC3339),
		CategoryID:  tx.CategoryID.String(),
		Category:    toCategoryResponse(&tx.Category),
	}
	if tx.DeletedAt != nil {
		s := tx.DeletedAt.UTC().Format(time.RFC3339)
		resp.DeletedAt = &s
	}
	return resp
}

func toTransactionResponses(list []*domain.TransactionWithCategory) []transactionResponse {
	out := make([]transactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, toTransactionResponse(tx))
	}
	return out
}

type investmentResponse struct {
	ID            string      `json:"id"`
	Asset         string      `json:"asset"`
	Quantity      json.Number `json:"quantity"`
	PurchasePrice json.Number `json:"purchasePrice"`
	PurchaseDate  string      `json:"purchaseDate"`
}

func toInvestmentResponse(inv *domain.Investment) investmentResponse {
	return investmentResponse{
		ID:            inv.ID.String(),
		Asset:         inv.Asset,
		Quantity:      json.Number(inv.Quantity.String()),
		PurchasePrice: json.Number(inv.PurchasePrice.String()),
		PurchaseDate:  inv.PurchaseDate.UTC().Format(time.RFC3339),
	}
}

type reportResponse struct {
	Year               int                      `json:"year"`
	Month              int                      `json:"month"`
	TotalIncome        json.Number              `json:"totalIncome"`
	TotalExpense       json.Number              `json:"totalExpense"`
	Balance            json.Number              `json:"balance"`
	ExpensesByCategory domain.CategoryBreakdown `json:"expensesByCategory"`
	Transactions       []transactionResponse    `json:"transactions"`
}

func toReportResponse(rep *domain.MonthlyReport) reportResponse {
	txs := make([]transactionResponse, 0, len(rep.Transactions))
	for i := range rep.Transactions {
		txs = append(txs, toTransactionResponse(&rep.Transactions[i]))
	}
	return reportResponse{
		Year:               rep.Year,
		Month:              int(rep.Month),
		TotalIncome:        json.Number(rep.TotalIncome.String()),
		TotalExpense:       json.Number(rep.TotalExpense.String()),
		Balance:            json.Number(rep.Balance.String()),
		ExpensesByCategory: rep.ExpensesByCategory,
		Transactions:       txs,
	}
}
