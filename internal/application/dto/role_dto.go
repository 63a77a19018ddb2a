package dto

import "time"

// SaveRoleRequest cuerpo para crear o actualizar un rol.
type SaveRoleRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	PermissionIDs []int64 `json:"permissionIds"`
}

// PermissionResponse permiso asociado a un rol.
type PermissionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoleResponse representación HTTP de un rol con sus permisos.
type RoleResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Permissions []PermissionResponse `json:"permissions"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// RoleListResponse página de roles más el total de coincidencias del filtro.
type RoleListResponse struct {
	Data  []RoleResponse `json:"data"`
	Total int64          `json:"total"`
}
