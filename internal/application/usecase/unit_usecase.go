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

// unitSortable allow-list de campos ordenables para unidades: parámetro del caller -> columna.
var unitSortable = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// UnitUseCase casos de uso CRUD para el maestro de unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
	clk  *clock.Clock
	coll *collate.Collator
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository, clk *clock.Clock) *UnitUseCase {
	return &UnitUseCase{repo: repo, clk: clk, coll: collate.New(language.Spanish)}
}

// List devuelve una página de unidades activas y el total de coincidencias del filtro.
// El count y la página se consultan con el mismo filtro pero fuera de transacción:
// bajo escrituras concurrentes pueden divergir (aceptable para UI administrativa).
func (uc *UnitUseCase) List(in dto.ListRequest) (*dto.UnitListResponse, error) {
	q := in.Normalize(unitSortable)
	total, err := uc.repo.Count(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	data := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		data = append(data, *toUnitResponse(u))
	}
	return &dto.UnitListResponse{Data: data, Total: total}, nil
}

// All devuelve todas las unidades activas sin paginar, ordenadas por nombre con
// colación española (la DB puede estar en locale C).
func (uc *UnitUseCase) All() ([]dto.UnitResponse, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return uc.coll.CompareString(list[i].Name, list[j].Name) < 0
	})
	data := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		data = append(data, *toUnitResponse(u))
	}
	return data, nil
}

// GetByID obtiene una unidad por ID. Devuelve nil si no existe.
// No filtra borradas lógicamente (comportamiento histórico del contrato).
func (uc *UnitUseCase) GetByID(id int64) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	return toUnitResponse(unit), nil
}

// Save crea (id == 0) o actualiza (id > 0) una unidad. El nombre debe ser único
// entre unidades activas, excluyendo la propia unidad al actualizar. Los timestamps
// los asigna siempre el servidor vía el reloj civil.
// El chequeo de existencia usa GetByID, que no filtra deleted_at: un update puede
// alcanzar una unidad borrada lógicamente, igual que su detalle por id sigue visible.
// Devuelve created=true cuando se insertó un registro nuevo.
func (uc *UnitUseCase) Save(id int64, in dto.SaveUnitRequest) (out *dto.UnitResponse, created bool, err error) {
	var existing *entity.Unit
	if id > 0 {
		existing, err = uc.repo.GetByID(id)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, domain.ErrNotFound
		}
	}

	dup, err := uc.repo.GetByName(in.Name, id)
	if err != nil {
		return nil, false, err
	}
	if dup != nil {
		return nil, false, domain.ErrDuplicate
	}

	now := uc.clk.Now()
	if existing == nil {
		unit := &entity.Unit{Name: in.Name, CreatedAt: now, UpdatedAt: now}
		if err := uc.repo.Create(unit); err != nil {
			return nil, false, err
		}
		return toUnitResponse(unit), true, nil
	}

	existing.Name = in.Name
	existing.UpdatedAt = now
	if err := uc.repo.Update(existing); err != nil {
		return nil, false, err
	}
	return toUnitResponse(existing), false, nil
}

// Delete borra lógicamente una unidad estampando deleted_at. Una unidad ya
// borrada se trata como inexistente (ErrNotFound), no se re-estampa.
func (uc *UnitUseCase) Delete(id int64) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	at := uc.clk.Now()
	if err := uc.repo.SoftDelete(id, at); err != nil {
		return nil, err
	}
	unit.DeletedAt = &at
	return toUnitResponse(unit), nil
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitResponse{
		ID:        u.ID,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}
