package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named grouping of transactions owned by exactly one user.
// Names are unique per user by convention; deletion is not supported.
type Category struct {
	ID        uuid.UUID
	Name      string
	UserID    uuid.UUID
	CreatedAt time.Time
}
