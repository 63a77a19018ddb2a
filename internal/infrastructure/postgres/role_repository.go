package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

const roleColumns = "id, name, created_at, updated_at"

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas cargan los permisos asociados con una segunda consulta sobre la join table.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol y asigna el ID generado. Las asociaciones se
// escriben aparte con ReplacePermissions (mismo Querier, misma tx).
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (name, created_at, updated_at)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		role.Name, role.CreatedAt, role.UpdatedAt,
	).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables del rol (created_at no se toca).
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `UPDATE roles SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID con sus permisos.
func (r *RoleRepo) GetByID(id int64) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	role, err := r.scanOne(r.q.QueryRow(context.Background(), query, id), "get role")
	if err != nil || role == nil {
		return role, err
	}
	if err := r.attachPermissions([]*entity.Role{role}); err != nil {
		return nil, err
	}
	return role, nil
}

// GetByName busca un rol por nombre exacto excluyendo excludeID (0 = ninguno).
// No carga permisos: solo se usa para el chequeo de unicidad.
func (r *RoleRepo) GetByName(name string, excludeID int64) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE name = $1 AND id <> $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, excludeID), "get role by name")
}

// List devuelve una página de roles con sus permisos según el filtro.
func (r *RoleRepo) List(q repository.ListQuery) ([]*entity.Role, error) {
	where, args := listClauses(q, "name", false)
	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(`SELECT %s FROM roles WHERE %s %s LIMIT $%d OFFSET $%d`,
		roleColumns, where, orderBy(q), len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	list, err := r.scanAll(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachPermissions(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count cuenta los roles que coinciden con el mismo filtro de List.
func (r *RoleRepo) Count(q repository.ListQuery) (int64, error) {
	where, args := listClauses(q, "name", false)
	query := fmt.Sprintf(`SELECT count(*) FROM roles WHERE %s`, where)
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return total, nil
}

// All devuelve todos los roles con sus permisos.
func (r *RoleRepo) All() ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("all roles: %w", err)
	}
	defer rows.Close()
	list, err := r.scanAll(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachPermissions(list); err != nil {
		return nil, err
	}
	return list, nil
}

// ReplacePermissions borra todas las asociaciones del rol y las recrea (sin diffing).
// Debe invocarse sobre un Querier transaccional junto con Create/Update.
func (r *RoleRepo) ReplacePermissions(roleID int64, permissionIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	for _, pid := range permissionIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`,
			roleID, pid,
		); err != nil {
			return fmt.Errorf("insert role permission %d: %w", pid, err)
		}
	}
	return nil
}

// Delete elimina físicamente el rol y sus asociaciones.
func (r *RoleRepo) Delete(id int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, id); err != nil {
		return fmt.Errorf("delete role permissions: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// attachPermissions carga en una sola consulta los permisos de todos los roles dados.
func (r *RoleRepo) attachPermissions(roles []*entity.Role) error {
	if len(roles) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(roles))
	byID := make(map[int64]*entity.Role, len(roles))
	for _, role := range roles {
		ids = append(ids, role.ID)
		byID[role.ID] = role
		role.Permissions = []entity.Permission{}
	}
	query := `
		SELECT rp.role_id, p.id, p.name, p.created_at, p.updated_at
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		WHERE rp.role_id = ANY($1)
		ORDER BY p.id`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("load role permissions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var roleID int64
		var p entity.Permission
		if err := rows.Scan(&roleID, &p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("scan role permission: %w", err)
		}
		if role, ok := byID[roleID]; ok {
			role.Permissions = append(role.Permissions, p)
		}
	}
	return rows.Err()
}

func (r *RoleRepo) scanOne(row pgx.Row, op string) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &role, nil
}

func (r *RoleRepo) scanAll(rows pgx.Rows) ([]*entity.Role, error) {
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
