package dto

type UpsertCustomerRequest struct {
	ID      string `json:"id"      validate:"omitempty,uuid"`
	Name    string `json:"name"    validate:"required,min=2,max=120"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"   validate:"omitempty,email"`
}

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
