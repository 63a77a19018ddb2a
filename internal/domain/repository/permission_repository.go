package repository

import "github.com/jhoicas/Maestros-api/internal/domain/entity"

// PermissionRepository catálogo de permisos (solo lectura).
type PermissionRepository interface {
	All() ([]entity.Permission, error)
	// GetByIDs devuelve los permisos existentes entre los IDs dados, en orden de ID.
	// IDs inexistentes simplemente no aparecen en el resultado.
	GetByIDs(ids []int64) ([]entity.Permission, error)
}
