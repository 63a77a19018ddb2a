package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

// RoleTxRunner ejecuta fn dentro de una transacción con un RoleRepository atado a la tx.
// Lo implementa postgres.TxRunner; el upsert y el delete de roles son los únicos
// escritores multi-sentencia (fila del rol + reemplazo de asociaciones).
type RoleTxRunner interface {
	Run(ctx context.Context, fn func(roles repository.RoleRepository) error) error
}

// SupplierPDFGenerator genera el listado PDF del maestro de proveedores.
// Lo implementa pdf.MarotoListGenerator.
type SupplierPDFGenerator interface {
	GenerateSupplierListPDF(suppliers []*entity.Supplier, generatedAt time.Time) ([]byte, error)
}
