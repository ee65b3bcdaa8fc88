package dto

type UpsertProviderRequest struct {
	ID       string `json:"id"       validate:"omitempty,uuid"`
	Name     string `json:"name"     validate:"required,min=2,max=120"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Category string `json:"category"`
}

type ProviderResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Category string `json:"category"`
}
