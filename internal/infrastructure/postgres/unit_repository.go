package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Maestros-api/internal/domain"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitColumns = "id, name, created_at, updated_at, deleted_at"

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para unidades. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una nueva unidad y asigna el ID generado.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (name, created_at, updated_at)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		unit.Name, unit.CreatedAt, unit.UpdatedAt,
	).Scan(&unit.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables de la unidad (created_at no se toca).
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `UPDATE units SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, unit.ID, unit.Name, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID, incluidas las borradas lógicamente.
func (r *UnitRepo) GetByID(id int64) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get unit")
}

// GetActiveByID obtiene una unidad por ID solo si no está borrada lógicamente.
func (r *UnitRepo) GetActiveByID(id int64) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get active unit")
}

// GetByName busca entre unidades activas por nombre exacto, excluyendo excludeID (0 = ninguna).
func (r *UnitRepo) GetByName(name string, excludeID int64) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE name = $1 AND deleted_at IS NULL AND id <> $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, excludeID), "get unit by name")
}

// List devuelve una página de unidades activas según el filtro.
func (r *UnitRepo) List(q repository.ListQuery) ([]*entity.Unit, error) {
	where, args := listClauses(q, "name", true)
	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(`SELECT %s FROM units WHERE %s %s LIMIT $%d OFFSET $%d`,
		unitColumns, where, orderBy(q), len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Count cuenta las unidades activas que coinciden con el mismo filtro de List.
func (r *UnitRepo) Count(q repository.ListQuery) (int64, error) {
	where, args := listClauses(q, "name", true)
	query := fmt.Sprintf(`SELECT count(*) FROM units WHERE %s`, where)
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count units: %w", err)
	}
	return total, nil
}

// All devuelve todas las unidades activas.
func (r *UnitRepo) All() ([]*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE deleted_at IS NULL ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("all units: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// SoftDelete estampa deleted_at; la fila permanece.
func (r *UnitRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units SET deleted_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) scanOne(row pgx.Row, op string) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *UnitRepo) scanAll(rows pgx.Rows) ([]*entity.Unit, error) {
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
