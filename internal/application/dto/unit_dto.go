package dto

import "time"

// SaveUnitRequest cuerpo para crear o actualizar una unidad de medida.
type SaveUnitRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UnitResponse representación HTTP de una unidad de medida.
type UnitResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// UnitListResponse página de unidades más el total de coincidencias del filtro.
type UnitListResponse struct {
	Data  []UnitResponse `json:"data"`
	Total int64          `json:"total"`
}
