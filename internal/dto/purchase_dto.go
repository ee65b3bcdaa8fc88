package dto

import "github.com/shopspring/decimal"

type UpsertPurchaseRequest struct {
	ID           string          `json:"id"            validate:"omitempty,uuid"`
	Date         string          `json:"date"          validate:"omitempty"` // RFC 3339; empty = now
	ProviderName string          `json:"provider_name" validate:"required,min=2,max=120"`
	Status       string          `json:"status"        validate:"required,oneof=Pendiente Recibida Cancelada"`
	Total        decimal.Decimal `json:"total"         validate:"min=0"`
}

type PurchaseResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	ProviderName string          `json:"provider_name"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
}
