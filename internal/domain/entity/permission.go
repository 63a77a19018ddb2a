package entity

import "time"

// Permission permiso atómico sobre una entidad maestra, ej. "Supplier-View" o "Role-Edit".
// Es un catálogo de solo lectura: la API no expone crear/editar permisos.
type Permission struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
