package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo catálogo de permisos sobre PostgreSQL (solo lectura).
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// All devuelve el catálogo completo de permisos ordenado por ID.
func (r *PermissionRepo) All() ([]entity.Permission, error) {
	query := `SELECT id, name, created_at, updated_at FROM permissions ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("all permissions: %w", err)
	}
	defer rows.Close()
	var list []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByIDs devuelve los permisos existentes entre los IDs dados (los inexistentes
// simplemente no aparecen), en orden de ID.
func (r *PermissionRepo) GetByIDs(ids []int64) ([]entity.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, name, created_at, updated_at FROM permissions WHERE id = ANY($1) ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get permissions by ids: %w", err)
	}
	defer rows.Close()
	var list []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
