package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses. Creation always writes "completed"; the other two exist for
// historical records and restores.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// WalkInCustomerName is the display label used when an order is not linked to
// any registered customer.
const WalkInCustomerName = "Consumidor Final"

// Order is a persisted sale. CustomerID is a plain indexed column on purpose:
// no foreign key, so deleting the customer leaves historical orders intact.
// A nil CustomerID means a walk-in sale.
type Order struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string     `gorm:"not null"`
	Date         time.Time  `gorm:"index;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'completed'"`
	Total        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is an embedded order line. ProductName and PriceAtSale are frozen
// at order time (snapshot pricing): later product edits or deletions never
// alter historical lines, which is also why ProductID carries no foreign key.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	PriceAtSale decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
