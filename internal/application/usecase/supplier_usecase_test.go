package usecase_test

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Maestros-api/internal/application/dto"
	"github.com/jhoicas/Maestros-api/internal/application/usecase"
	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de SupplierRepository y del generador de PDF
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	seq       int64
	suppliers map[int64]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[int64]*entity.Supplier{}}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.seq++
	s.ID = r.seq
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSupplierRepo) GetActiveByID(id int64) (*entity.Supplier, error) {
	s, _ := r.GetByID(id)
	if s == nil || !s.Active() {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSupplierRepo) GetByPhone(phone string, excludeID int64) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Active() && s.Phone == phone && s.ID != excludeID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) filtered(q repository.ListQuery) []*entity.Supplier {
	var out []*entity.Supplier
	needle := strings.ToLower(q.Search)
	for _, s := range r.suppliers {
		if !s.Active() {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if q.SortDesc {
			return out[i].Name > out[j].Name
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *fakeSupplierRepo) List(q repository.ListQuery) ([]*entity.Supplier, error) {
	out := r.filtered(q)
	if q.Offset >= len(out) {
		return nil, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *fakeSupplierRepo) Count(q repository.ListQuery) (int64, error) {
	return int64(len(r.filtered(q))), nil
}

func (r *fakeSupplierRepo) All() ([]*entity.Supplier, error) {
	return r.filtered(repository.ListQuery{}), nil
}

func (r *fakeSupplierRepo) SoftDelete(id int64, at time.Time) error {
	if s, ok := r.suppliers[id]; ok {
		cp := at
		s.DeletedAt = &cp
	}
	return nil
}

// fakePDFGenerator registra la llamada y devuelve un contenido fijo.
type fakePDFGenerator struct {
	calls       int
	gotNames    []string
	generatedAt time.Time
}

func (g *fakePDFGenerator) GenerateSupplierListPDF(suppliers []*entity.Supplier, generatedAt time.Time) ([]byte, error) {
	g.calls++
	g.gotNames = g.gotNames[:0]
	for _, s := range suppliers {
		g.gotNames = append(g.gotNames, s.Name)
	}
	g.generatedAt = generatedAt
	return []byte("%PDF-fake"), nil
}

func newSupplierUC(t *testing.T) (*usecase.SupplierUseCase, *fakeSupplierRepo, *fakePDFGenerator) {
	t.Helper()
	repo := newFakeSupplierRepo()
	pdf := &fakePDFGenerator{}
	return usecase.NewSupplierUseCase(repo, pdf, fixedClock(t)), repo, pdf
}

func saveSupplier(t *testing.T, uc *usecase.SupplierUseCase, name, phone string) *dto.SupplierResponse {
	t.Helper()
	out, _, err := uc.Save(0, dto.SaveSupplierRequest{
		Name:        name,
		Phone:       phone,
		CreditLimit: decimal.NewFromInt(1_000_000),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Save — unicidad por teléfono
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierSave_TelefonoDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, _, _ := newSupplierUC(t)

	saveSupplier(t, uc, "Distribuidora Andina", "3001112233")

	// Mismo teléfono, distinto nombre: debe chocar
	_, _, err := uc.Save(0, dto.SaveSupplierRequest{Name: "Otra Distribuidora", Phone: "3001112233"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"dos proveedores activos no pueden compartir teléfono")
}

func TestSupplierSave_MismoNombreDistintoTelefono_Permitido(t *testing.T) {
	uc, _, _ := newSupplierUC(t)

	saveSupplier(t, uc, "Distribuidora Andina", "3001112233")

	// El nombre NO es campo único del proveedor
	out, created, err := uc.Save(0, dto.SaveSupplierRequest{Name: "Distribuidora Andina", Phone: "3009998877"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Distribuidora Andina", out.Name)
}

func TestSupplierSave_Actualizar_ConservaTelefonoPropio(t *testing.T) {
	uc, _, _ := newSupplierUC(t)

	out := saveSupplier(t, uc, "Insumos del Valle", "3015556677")

	updated, created, err := uc.Save(out.ID, dto.SaveSupplierRequest{
		Name:        "Insumos del Valle SAS",
		Phone:       "3015556677", // el mismo; no debe chocar consigo mismo
		CreditLimit: decimal.NewFromInt(2_500_000),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Insumos del Valle SAS", updated.Name)
	assert.True(t, updated.CreditLimit.Equal(decimal.NewFromInt(2_500_000)),
		"el cupo de crédito debe actualizarse")
}

func TestSupplierSave_ActualizarInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _ := newSupplierUC(t)

	_, _, err := uc.Save(404, dto.SaveSupplierRequest{Name: "Fantasma", Phone: "300"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete — borrado lógico
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierDelete_BorradoLogico(t *testing.T) {
	uc, repo, _ := newSupplierUC(t)

	out := saveSupplier(t, uc, "Ferretería Central", "3020001122")

	deleted, err := uc.Delete(out.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)

	// La fila permanece para trazabilidad de compras históricas
	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.DeletedAt)

	list, err := uc.List(dto.ListRequest{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)

	// Re-borrar trata el registro como inexistente
	_, err = uc.Delete(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierDelete_LiberaElTelefono(t *testing.T) {
	uc, _, _ := newSupplierUC(t)

	out := saveSupplier(t, uc, "Proveedor Uno", "3111234567")
	_, err := uc.Delete(out.ID)
	require.NoError(t, err)

	// El teléfono de un proveedor borrado queda disponible
	_, created, err := uc.Save(0, dto.SaveSupplierRequest{Name: "Proveedor Dos", Phone: "3111234567"})
	require.NoError(t, err)
	assert.True(t, created)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ExportPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierExportPDF_GeneraConActivosOrdenados(t *testing.T) {
	uc, _, pdf := newSupplierUC(t)

	saveSupplier(t, uc, "Zeta Suministros", "300001")
	saveSupplier(t, uc, "Andina Suministros", "300002")
	borrado := saveSupplier(t, uc, "Borrado SAS", "300003")
	_, err := uc.Delete(borrado.ID)
	require.NoError(t, err)

	content, err := uc.ExportPDF()
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), content)
	assert.Equal(t, 1, pdf.calls)
	assert.Equal(t, []string{"Andina Suministros", "Zeta Suministros"}, pdf.gotNames,
		"el PDF lista solo activos, ordenados por nombre")
	assert.Equal(t, fixedInstant, pdf.generatedAt)
}
