package dto

// BackupDocument is the export/import format: one JSON document with every
// collection as a top-level array. Orders embed their items so the document
// is self-contained.
type BackupDocument struct {
	Products  []ProductResponse  `json:"products"`
	Customers []CustomerResponse `json:"customers"`
	Orders    []OrderResponse    `json:"orders"`
	Providers []ProviderResponse `json:"providers"`
	Discounts []DiscountResponse `json:"discounts"`
	Purchases []PurchaseResponse `json:"purchases"`
}

// RestoreResponse summarizes how many records each collection received.
type RestoreResponse struct {
	Products  int `json:"products"`
	Customers int `json:"customers"`
	Orders    int `json:"orders"`
	Providers int `json:"providers"`
	Discounts int `json:"discounts"`
	Purchases int `json:"purchases"`
}
