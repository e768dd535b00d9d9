package investment

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financanvas/backend/internal/domain"
)

// CreateInput holds the parameters for creating an investment.
type CreateInput struct {
	Asset         string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Asset) == "" {
		errs = append(errs, domain.FieldError{Field: "asset", Message: "required"})
	}
	if !i.Quantity.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be greater than zero"})
	}
	if !i.PurchasePrice.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "purchasePrice", Message: "must be greater than zero"})
	}
	if i.PurchaseDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "purchaseDate", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating an investment.
type UpdateInput struct {
	ID            uuid.UUID
	Asset         string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Asset) == "" {
		errs = append(errs, domain.FieldError{Field: "asset", Message: "required"})
	}
	if !i.Quantity.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be greater than zero"})
	}
	if !i.PurchasePrice.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "purchasePrice", Message: "must be greater than zero"})
	}
	if i.PurchaseDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "purchaseDate", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
