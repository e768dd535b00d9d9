package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType discriminates the direction of a transaction.
// The amount itself is always positive; direction is carried here.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

func (t TransactionType) String() string { return string(t) }

// Transaction is the central mutable entity of the tracker.
//
// DeletedAt == nil means the transaction is active: it appears in the
// primary listing and in monthly reports. DeletedAt != nil means it is
// trashed: it appears only in the trash listing and can be restored.
// There is no hard delete.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Date        time.Time
	CategoryID  uuid.UUID
	UserID      uuid.UUID
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTrashed reports whether the transaction is in the trash.
func (t *Transaction) IsTrashed() bool {
	return t.DeletedAt != nil
}

// TransactionWithCategory pairs a transaction with its resolved category,
// as returned by listings and reports.
type TransactionWithCategory struct {
	Transaction
	Category Category
}
