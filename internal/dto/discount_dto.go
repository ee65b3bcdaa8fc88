package dto

type UpsertDiscountRequest struct {
	ID          string `json:"id"          validate:"omitempty,uuid"`
	Name        string `json:"name"        validate:"required,min=2,max=80"`
	Description string `json:"description"`
	Value       string `json:"value"       validate:"required"` // e.g. "10%" or "$500"
	Active      bool   `json:"active"`
	Color       string `json:"color"`
}

type DiscountResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       string `json:"value"`
	Active      bool   `json:"active"`
	Color       string `json:"color"`
}
