package usecase_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Maestros-api/internal/application/dto"
	"github.com/jhoicas/Maestros-api/internal/application/usecase"
	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de RoleRepository, PermissionRepository y RoleTxRunner
// ──────────────────────────────────────────────────────────────────────────────

type fakeRoleRepo struct {
	seq     int64
	roles   map[int64]*entity.Role
	catalog map[int64]entity.Permission // compartido con fakePermRepo
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	r.seq++
	role.ID = r.seq
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *fakeRoleRepo) Update(role *entity.Role) error {
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	if role, ok := r.roles[id]; ok {
		cp := *role
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRoleRepo) GetByName(name string, excludeID int64) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name && role.ID != excludeID {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) filtered(q repository.ListQuery) []*entity.Role {
	var out []*entity.Role
	needle := strings.ToLower(q.Search)
	for _, role := range r.roles {
		if needle != "" && !strings.Contains(strings.ToLower(role.Name), needle) {
			continue
		}
		cp := *role
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

func (r *fakeRoleRepo) List(q repository.ListQuery) ([]*entity.Role, error) {
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

func (r *fakeRoleRepo) Count(q repository.ListQuery) (int64, error) {
	return int64(len(r.filtered(q))), nil
}

func (r *fakeRoleRepo) All() ([]*entity.Role, error) {
	return r.filtered(repository.ListQuery{}), nil
}

func (r *fakeRoleRepo) ReplacePermissions(roleID int64, permissionIDs []int64) error {
	role, ok := r.roles[roleID]
	if !ok {
		return domain.ErrNotFound
	}
	role.Permissions = nil
	for _, id := range permissionIDs {
		if p, ok := r.catalog[id]; ok {
			role.Permissions = append(role.Permissions, p)
		}
	}
	return nil
}

func (r *fakeRoleRepo) Delete(id int64) error {
	delete(r.roles, id)
	return nil
}

type fakePermRepo struct {
	catalog map[int64]entity.Permission
}

func (r *fakePermRepo) All() ([]entity.Permission, error) {
	out := make([]entity.Permission, 0, len(r.catalog))
	for _, p := range r.catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePermRepo) GetByIDs(ids []int64) ([]entity.Permission, error) {
	var out []entity.Permission
	for _, id := range ids {
		if p, ok := r.catalog[id]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeTxRunner pasa el mismo repo a fn y cuenta las transacciones abiertas.
type fakeTxRunner struct {
	repo repository.RoleRepository
	runs int
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(roles repository.RoleRepository) error) error {
	tx.runs++
	return fn(tx.repo)
}

func newRoleUC(t *testing.T) (*usecase.RoleUseCase, *fakeRoleRepo, *fakeTxRunner) {
	t.Helper()
	catalog := map[int64]entity.Permission{
		1: {ID: 1, Name: "Role-View"},
		2: {ID: 2, Name: "Role-Create"},
		3: {ID: 3, Name: "Supplier-View"},
	}
	repo := &fakeRoleRepo{roles: map[int64]*entity.Role{}, catalog: catalog}
	perms := &fakePermRepo{catalog: catalog}
	tx := &fakeTxRunner{repo: repo}
	return usecase.NewRoleUseCase(repo, perms, tx, fixedClock(t)), repo, tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Save
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleSave_Crear_AsociaPermisosEnTransaccion(t *testing.T) {
	uc, repo, tx := newRoleUC(t)

	out, created, err := uc.Save(context.Background(), 0, dto.SaveRoleRequest{
		Name:          "Compras",
		PermissionIDs: []int64{1, 3},
	})
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, 1, tx.runs, "fila del rol y asociaciones se escriben en una sola transacción")

	require.Len(t, out.Permissions, 2)
	assert.Equal(t, "Role-View", out.Permissions[0].Name)
	assert.Equal(t, "Supplier-View", out.Permissions[1].Name)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, []int64{1, 3}, stored.PermissionIDs())
}

func TestRoleSave_IDsDePermisoInexistentes_SeDescartan(t *testing.T) {
	uc, _, _ := newRoleUC(t)

	out, _, err := uc.Save(context.Background(), 0, dto.SaveRoleRequest{
		Name:          "Consulta",
		PermissionIDs: []int64{1, 99, 1000},
	})
	require.NoError(t, err)

	require.Len(t, out.Permissions, 1, "IDs fuera del catálogo no generan asociaciones")
	assert.Equal(t, int64(1), out.Permissions[0].ID)
}

func TestRoleSave_NombreDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, _, _ := newRoleUC(t)

	_, _, err := uc.Save(context.Background(), 0, dto.SaveRoleRequest{Name: "Administrador"})
	require.NoError(t, err)

	_, _, err = uc.Save(context.Background(), 0, dto.SaveRoleRequest{Name: "Administrador"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRoleSave_Actualizar_ReemplazaPermisosCompletos(t *testing.T) {
	uc, repo, _ := newRoleUC(t)

	out, _, err := uc.Save(context.Background(), 0, dto.SaveRoleRequest{
		Name:          "Bodega",
		PermissionIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	// El update no hace diffing: el conjunto enviado sustituye al anterior
	updated, created, err := uc.Save(context.Background(), out.ID, dto.SaveRoleRequest{
		Name:          "Bodega",
		PermissionIDs: []int64{3},
	})
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, updated.Permissions, 1)
	assert.Equal(t, int64(3), updated.Permissions[0].ID)

	stored, _ := repo.GetByID(out.ID)
	assert.Equal(t, []int64{3}, stored.PermissionIDs())
}

func TestRoleSave_ActualizarInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _ := newRoleUC(t)

	_, _, err := uc.Save(context.Background(), 77, dto.SaveRoleRequest{Name: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete — borrado físico
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleDelete_EliminaFisicamente(t *testing.T) {
	uc, repo, tx := newRoleUC(t)

	out, _, err := uc.Save(context.Background(), 0, dto.SaveRoleRequest{Name: "Temporal"})
	require.NoError(t, err)
	txAntes := tx.runs

	deleted, err := uc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, deleted.ID)
	assert.Equal(t, txAntes+1, tx.runs, "el delete corre en transacción")

	// A diferencia de proveedores y unidades, la fila desaparece
	stored, _ := repo.GetByID(out.ID)
	assert.Nil(t, stored)

	_, err = uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Permissions — catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestRolePermissions_DevuelveCatalogoOrdenado(t *testing.T) {
	uc, _, _ := newRoleUC(t)

	perms, err := uc.Permissions()
	require.NoError(t, err)

	require.Len(t, perms, 3)
	assert.Equal(t, "Role-View", perms[0].Name)
	assert.Equal(t, "Role-Create", perms[1].Name)
	assert.Equal(t, "Supplier-View", perms[2].Name)
}
