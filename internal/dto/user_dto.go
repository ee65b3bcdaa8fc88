package dto

type UpsertUserRequest struct {
	ID       string `json:"id"       validate:"omitempty,uuid"`
	Username string `json:"username" validate:"required,min=2,max=60"`
	Role     string `json:"role"     validate:"required,oneof=Admin Empleado Vendedor"`
	Color    string `json:"color"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Color    string `json:"color"`
}
