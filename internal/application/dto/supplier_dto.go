package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveSupplierRequest cuerpo para crear o actualizar un proveedor.
type SaveSupplierRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Phone       string          `json:"phone" validate:"required,min=5,max=30"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   *time.Time      `json:"deletedAt"`
}

// SupplierListResponse página de proveedores más el total de coincidencias del filtro.
type SupplierListResponse struct {
	Data  []SupplierResponse `json:"data"`
	Total int64              `json:"total"`
}
