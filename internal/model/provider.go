package model

import (
	"time"

	"github.com/google/uuid"
)

// Provider is a supplier contact record. Purchases reference providers by
// denormalized name only, so there are no cross-entity constraints.
type Provider struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Contact   string
	Phone     string
	Email     string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
