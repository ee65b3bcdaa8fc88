package model

import (
	"time"

	"github.com/google/uuid"
)

// AppUser is a role-tagged operator record shown in the admin panel.
// Roles: "Admin" | "Empleado" | "Vendedor".
type AppUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string    `gorm:"uniqueIndex;not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:'Empleado'"`
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AppUser) TableName() string { return "app_users" }
