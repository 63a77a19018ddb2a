package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Maestros-api/internal/application/dto"
	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
	"github.com/jhoicas/Maestros-api/pkg/clock"
)

// supplierSortable allow-list de campos ordenables para proveedores.
var supplierSortable = map[string]string{
	"name":      "name",
	"phone":     "phone",
	"email":     "email",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// SupplierUseCase casos de uso CRUD para el maestro de proveedores.
// El teléfono es el campo único del proveedor (dos proveedores pueden compartir nombre).
type SupplierUseCase struct {
	repo repository.SupplierRepository
	pdf  SupplierPDFGenerator
	clk  *clock.Clock
	coll *collate.Collator
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, pdf SupplierPDFGenerator, clk *clock.Clock) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, pdf: pdf, clk: clk, coll: collate.New(language.Spanish)}
}

// List devuelve una página de proveedores activos y el total de coincidencias del filtro.
func (uc *SupplierUseCase) List(in dto.ListRequest) (*dto.SupplierListResponse, error) {
	q := in.Normalize(supplierSortable)
	total, err := uc.repo.Count(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		data = append(data, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Data: data, Total: total}, nil
}

// All devuelve todos los proveedores activos ordenados por nombre con colación española.
func (uc *SupplierUseCase) All() ([]dto.SupplierResponse, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return uc.coll.CompareString(list[i].Name, list[j].Name) < 0
	})
	data := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		data = append(data, *toSupplierResponse(s))
	}
	return data, nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
// No filtra borrados lógicamente (comportamiento histórico del contrato).
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Save crea (id == 0) o actualiza (id > 0) un proveedor. El teléfono debe ser único
// entre proveedores activos, excluyendo el propio registro al actualizar.
// El chequeo de existencia usa GetByID, que no filtra deleted_at: un update puede
// alcanzar un proveedor borrado lógicamente, igual que su detalle por id sigue visible.
func (uc *SupplierUseCase) Save(id int64, in dto.SaveSupplierRequest) (out *dto.SupplierResponse, created bool, err error) {
	var existing *entity.Supplier
	if id > 0 {
		existing, err = uc.repo.GetByID(id)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, domain.ErrNotFound
		}
	}

	dup, err := uc.repo.GetByPhone(in.Phone, id)
	if err != nil {
		return nil, false, err
	}
	if dup != nil {
		return nil, false, domain.ErrDuplicate
	}

	now := uc.clk.Now()
	if existing == nil {
		supplier := &entity.Supplier{
			Name:        in.Name,
			Phone:       in.Phone,
			Email:       in.Email,
			Address:     in.Address,
			CreditLimit: in.CreditLimit,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.Create(supplier); err != nil {
			return nil, false, err
		}
		return toSupplierResponse(supplier), true, nil
	}

	existing.Name = in.Name
	existing.Phone = in.Phone
	existing.Email = in.Email
	existing.Address = in.Address
	existing.CreditLimit = in.CreditLimit
	existing.UpdatedAt = now
	if err := uc.repo.Update(existing); err != nil {
		return nil, false, err
	}
	return toSupplierResponse(existing), false, nil
}

// Delete borra lógicamente un proveedor. Un proveedor ya borrado se trata como
// inexistente (ErrNotFound).
func (uc *SupplierUseCase) Delete(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	at := uc.clk.Now()
	if err := uc.repo.SoftDelete(id, at); err != nil {
		return nil, err
	}
	supplier.DeletedAt = &at
	return toSupplierResponse(supplier), nil
}

// ExportPDF genera el listado PDF de proveedores activos (ordenado como All).
func (uc *SupplierUseCase) ExportPDF() ([]byte, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return uc.coll.CompareString(list[i].Name, list[j].Name) < 0
	})
	return uc.pdf.GenerateSupplierListPDF(list, uc.clk.Now())
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		CreditLimit: s.CreditLimit,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		DeletedAt:   s.DeletedAt,
	}
}
