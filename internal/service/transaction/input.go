package transaction

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financanvas/backend/internal/domain"
)

// CreateInput holds the parameters for creating a transaction.
type CreateInput struct {
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Date        time.Time
	CategoryID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if !i.Type.Valid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be INCOME or EXPENSE"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a transaction. All fields are
// required; a partial update is expressed by sending the current values back.
type UpdateInput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Date        time.Time
	CategoryID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if !i.Type.Valid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be INCOME or EXPENSE"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
