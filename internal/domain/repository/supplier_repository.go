package repository

import (
	"time"

	"github.com/jhoicas/Maestros-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// List/Count/All excluyen siempre los registros con borrado lógico; GetByID no
// filtra deleted_at (comportamiento histórico del contrato).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	// GetActiveByID devuelve el proveedor solo si no está borrado lógicamente.
	GetActiveByID(id int64) (*entity.Supplier, error)
	// GetByPhone busca entre proveedores activos por teléfono exacto excluyendo
	// excludeID (0 = sin exclusión). Respaldo del chequeo de unicidad.
	GetByPhone(phone string, excludeID int64) (*entity.Supplier, error)
	List(q ListQuery) ([]*entity.Supplier, error)
	Count(q ListQuery) (int64, error)
	All() ([]*entity.Supplier, error)
	// SoftDelete estampa deleted_at; no elimina la fila.
	SoftDelete(id int64, at time.Time) error
}
