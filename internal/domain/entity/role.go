package entity

import "time"

// Role rol de usuario del sistema. El nombre es único y las asociaciones a permisos
// se reemplazan completas en cada actualización (sin diffing).
type Role struct {
	ID          int64
	Name        string
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PermissionIDs devuelve los IDs de los permisos asociados.
func (r *Role) PermissionIDs() []int64 {
	ids := make([]int64, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		ids = append(ids, p.ID)
	}
	return ids
}

// PermissionNames devuelve los nombres de los permisos asociados (para claims JWT).
func (r *Role) PermissionNames() []string {
	names := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		names = append(names, p.Name)
	}
	return names
}
