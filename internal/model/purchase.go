package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase statuses (supplier order lifecycle).
const (
	PurchasePendiente = "Pendiente"
	PurchaseRecibida  = "Recibida"
	PurchaseCancelada = "Cancelada"
)

// Purchase is an order placed with a provider. ProviderName is denormalized;
// purchases never affect product stock.
type Purchase struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date         time.Time `gorm:"index;not null"`
	ProviderName string    `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	Total        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
