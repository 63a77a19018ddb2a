package repository

import "github.com/jhoicas/Maestros-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
// Los métodos de lectura devuelven el rol con sus permisos cargados.
type RoleRepository interface {
	Create(role *entity.Role) error
	Update(role *entity.Role) error
	GetByID(id int64) (*entity.Role, error)
	// GetByName busca un rol por nombre exacto excluyendo excludeID (0 = sin exclusión).
	// Respaldo del chequeo de unicidad previo al upsert.
	GetByName(name string, excludeID int64) (*entity.Role, error)
	List(q ListQuery) ([]*entity.Role, error)
	Count(q ListQuery) (int64, error)
	All() ([]*entity.Role, error)
	// ReplacePermissions borra todas las asociaciones del rol y las recrea con permissionIDs.
	ReplacePermissions(roleID int64, permissionIDs []int64) error
	// Delete elimina físicamente el rol y sus asociaciones.
	Delete(id int64) error
}
