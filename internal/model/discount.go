package model

import (
	"time"

	"github.com/google/uuid"
)

// Discount is a promotional label. Value is free text as entered by the
// operator, e.g. "10%" or "$500" — it is never parsed or applied to totals.
type Discount struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description string
	Value       string `gorm:"not null"`
	Active      bool   `gorm:"not null;default:true"`
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
