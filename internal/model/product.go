package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product categories for ice-cream shop supplies.
var ProductCategories = []string{"Potes", "Cucuruchos", "Servilletas", "Cucharitas", "Salsas", "Otros"}

// Product is a catalog item. Stock is only ever decremented by order
// creation; the CHECK constraint backs the "never negative" invariant at the
// database level in addition to the conditional decrement in the repository.
type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string          `gorm:"index;not null"`
	Category  string          `gorm:"not null;default:'Otros'"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock     int             `gorm:"not null;default:0;check:stock >= 0"`
	MinStock  int             `gorm:"not null;default:0"`
	Unit      string          `gorm:"not null;default:'unidades'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelowMinimum reports whether the product should raise a low-stock alert.
func (p *Product) BelowMinimum() bool { return p.Stock <= p.MinStock }
