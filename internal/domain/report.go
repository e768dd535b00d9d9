package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Report year bounds accepted by the aggregation engine.
const (
	ReportMinYear = 2000
	ReportMaxYear = 2100
)

// MonthlyReport aggregates a user's active transactions over one calendar
// month: totals, a per-category expense breakdown, and the matching
// transactions with their resolved categories.
type MonthlyReport struct {
	Year               int
	Month              time.Month
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	Balance            decimal.Decimal
	ExpensesByCategory CategoryBreakdown
	Transactions       []TransactionWithCategory
}

// CategoryExpense is one breakdown entry: a category name and the summed
// expense amount attributed to it.
type CategoryExpense struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown maps category names to summed expense amounts while
// preserving first-seen order. Order is part of the observable JSON, so a
// plain map (unordered, and sorted by encoding/json) cannot carry it.
type CategoryBreakdown struct {
	entries []CategoryExpense
}

// Add accumulates amount under the given category name, appending the
// category on first sight.
func (b *CategoryBreakdown) Add(category string, amount decimal.Decimal) {
	for i := range b.entries {
		if b.entries[i].Category == category {
			b.entries[i].Amount = b.entries[i].Amount.Add(amount)
			return
		}
	}
	b.entries = append(b.entries, CategoryExpense{Category: category, Amount: amount})
}

// Get returns the summed amount for a category name.
func (b *CategoryBreakdown) Get(category string) (decimal.Decimal, bool) {
	for _, e := range b.entries {
		if e.Category == category {
			return e.Amount, true
		}
	}
	return decimal.Decimal{}, false
}

// Entries returns the breakdown entries in first-seen order.
func (b *CategoryBreakdown) Entries() []CategoryExpense {
	return b.entries
}

// Len returns the number of categories in the breakdown.
func (b *CategoryBreakdown) Len() int {
	return len(b.entries)
}

// MarshalJSON renders the breakdown as a JSON object whose keys appear in
// first-seen order with plain numeric values.
func (b CategoryBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range b.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := jsonString(e.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(e.Amount.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonString(s string) ([]byte, error) {
	return json.Marshal(s)
}

// MonthRange returns the inclusive window of a calendar month: the first
// instant of (year, month) and 23:59:59 of its last day. The end is
// computed as day 0 of the following month, which time.Date normalizes,
// so December rolls over into January of the next year.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)
	return start, end
}
