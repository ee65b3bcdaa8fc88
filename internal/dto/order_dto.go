package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// OrderItemRequest is one cart line. PriceAtSale is supplied by the caller as
// a snapshot of the price shown at cart time; the workflow never re-fetches it.
type OrderItemRequest struct {
	ProductID   string          `json:"product_id"    validate:"required,uuid"`
	Quantity    int             `json:"quantity"      validate:"required,min=1"`
	PriceAtSale decimal.Decimal `json:"price_at_sale" validate:"min=0"`
}

// CreateOrderRequest turns a cart into a persisted order.
// CustomerID is either a customer uuid or the literal "walk-in".
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required"`
	Items      []OrderItemRequest `json:"items"       validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"` // "walk-in" when not linked
	CustomerName string              `json:"customer_name"`
	Date         string              `json:"date"` // RFC 3339
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	Items        []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int             `json:"total"`
}
