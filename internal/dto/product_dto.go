package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpsertProductRequest creates or replaces a product. ID is optional: empty
// means create with a generated id, a known id replaces that record.
type UpsertProductRequest struct {
	ID       string          `json:"id"        validate:"omitempty,uuid"`
	Name     string          `json:"name"      validate:"required,min=2,max=120"`
	Category string          `json:"category"  validate:"required,oneof=Potes Cucuruchos Servilletas Cucharitas Salsas Otros"`
	Price    decimal.Decimal `json:"price"     validate:"min=0"`
	Stock    int             `json:"stock"     validate:"min=0"`
	MinStock int             `json:"min_stock" validate:"min=0"`
	Unit     string          `json:"unit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	Unit     string          `json:"unit"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}
