package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered buyer. Orders reference customers by id but keep a
// denormalized name snapshot, so deleting a customer never cascades to orders.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
