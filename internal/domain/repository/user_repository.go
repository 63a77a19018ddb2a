package repository

import "github.com/jhoicas/Maestros-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (solo lo que necesita auth).
type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
}
