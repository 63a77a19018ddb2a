package usecase

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Maestros-api/internal/application/dto"
	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
	"github.com/jhoicas/Maestros-api/pkg/clock"
)

// roleSortable allow-list de campos ordenables para roles.
var roleSortable = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// RoleUseCase casos de uso CRUD para roles. A diferencia de proveedores y unidades,
// el rol se borra físicamente y sus asociaciones a permisos se reemplazan completas
// en cada actualización, dentro de una transacción.
type RoleUseCase struct {
	repo  repository.RoleRepository
	perms repository.PermissionRepository
	tx    RoleTxRunner
	clk   *clock.Clock
	coll  *collate.Collator
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, perms repository.PermissionRepository, tx RoleTxRunner, clk *clock.Clock) *RoleUseCase {
	return &RoleUseCase{repo: repo, perms: perms, tx: tx, clk: clk, coll: collate.New(language.Spanish)}
}

// List devuelve una página de roles (con permisos) y el total de coincidencias.
func (uc *RoleUseCase) List(in dto.ListRequest) (*dto.RoleListResponse, error) {
	q := in.Normalize(roleSortable)
	total, err := uc.repo.Count(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	data := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		data = append(data, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Data: data, Total: total}, nil
}

// All devuelve todos los roles ordenados por nombre con colación española.
func (uc *RoleUseCase) All() ([]dto.RoleResponse, error) {
	list, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return uc.coll.CompareString(list[i].Name, list[j].Name) < 0
	})
	data := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		data = append(data, *toRoleResponse(r))
	}
	return data, nil
}

// GetByID obtiene un rol con sus permisos. Devuelve nil si no existe.
func (uc *RoleUseCase) GetByID(id int64) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// Permissions devuelve el catálogo completo de permisos asignables.
func (uc *RoleUseCase) Permissions() ([]dto.PermissionResponse, error) {
	perms, err := uc.perms.All()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, dto.PermissionResponse{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

// Save crea (id == 0) o actualiza (id > 0) un rol. El nombre debe ser único,
// excluyendo el propio rol al actualizar. Las asociaciones a permisos se
// reemplazan completas (sin diffing) con los IDs enviados; IDs que no existen
// en el catálogo se descartan. La fila del rol y el reemplazo de asociaciones
// se escriben en una sola transacción, y el índice único de la DB respalda el
// chequeo de nombre (23505 -> ErrDuplicate).
func (uc *RoleUseCase) Save(ctx context.Context, id int64, in dto.SaveRoleRequest) (out *dto.RoleResponse, created bool, err error) {
	var existing *entity.Role
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

	perms, err := uc.perms.GetByIDs(in.PermissionIDs)
	if err != nil {
		return nil, false, err
	}

	now := uc.clk.Now()
	role := existing
	if role == nil {
		role = &entity.Role{Name: in.Name, CreatedAt: now, UpdatedAt: now}
	} else {
		role.Name = in.Name
		role.UpdatedAt = now
	}
	role.Permissions = perms

	err = uc.tx.Run(ctx, func(roles repository.RoleRepository) error {
		if existing == nil {
			if err := roles.Create(role); err != nil {
				return err
			}
		} else {
			if err := roles.Update(role); err != nil {
				return err
			}
		}
		return roles.ReplacePermissions(role.ID, role.PermissionIDs())
	})
	if err != nil {
		return nil, false, err
	}
	return toRoleResponse(role), existing == nil, nil
}

// Delete elimina físicamente un rol y sus asociaciones a permisos (en transacción).
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	err = uc.tx.Run(ctx, func(roles repository.RoleRepository) error {
		return roles.Delete(id)
	})
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	perms := make([]dto.PermissionResponse, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, dto.PermissionResponse{ID: p.ID, Name: p.Name})
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: perms,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
