package entity

import "time"

// User usuario que se autentica contra la API. Su rol determina los permisos
// que viajan en el token.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	RoleID       int64
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
