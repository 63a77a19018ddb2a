package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor del maestro de compras. El teléfono es único entre proveedores
// activos. DeletedAt no nulo marca borrado lógico: el registro sale de los listados
// pero permanece en la tabla para trazabilidad de compras históricas.
type Supplier struct {
	ID          int64
	Name        string
	Phone       string
	Email       string
	Address     string
	CreditLimit decimal.Decimal // cupo de crédito acordado (COP)
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// Active indica si el proveedor no está borrado lógicamente.
func (s *Supplier) Active() bool {
	return s.DeletedAt == nil
}
