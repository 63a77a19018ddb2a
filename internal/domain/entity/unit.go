package entity

import "time"

// Unit unidad de medida del maestro de inventario (ej. "Kg", "Caja", "Unidad").
// Nombre único entre unidades activas; borrado lógico vía DeletedAt.
type Unit struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Active indica si la unidad no está borrada lógicamente.
func (u *Unit) Active() bool {
	return u.DeletedAt == nil
}
