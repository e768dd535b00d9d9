package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment is a position record: an asset bought at a unit price on a
// date. Investments have no soft-delete lifecycle; deletes are hard.
type Investment struct {
	ID            uuid.UUID
	Asset         string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
	UserID        uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
