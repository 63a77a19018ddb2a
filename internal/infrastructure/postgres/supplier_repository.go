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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = "id, name, phone, email, address, credit_limit, created_at, updated_at, deleted_at"

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, phone, email, address, credit_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Name, supplier.Phone, supplier.Email, supplier.Address,
		supplier.CreditLimit, supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables del proveedor (created_at no se toca).
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, phone = $3, email = $4, address = $5, credit_limit = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email, supplier.Address,
		supplier.CreditLimit, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID, incluidos los borrados lógicamente.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get supplier")
}

// GetActiveByID obtiene un proveedor por ID solo si no está borrado lógicamente.
func (r *SupplierRepo) GetActiveByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get active supplier")
}

// GetByPhone busca entre proveedores activos por teléfono exacto, excluyendo excludeID (0 = ninguno).
func (r *SupplierRepo) GetByPhone(phone string, excludeID int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE phone = $1 AND deleted_at IS NULL AND id <> $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, phone, excludeID), "get supplier by phone")
}

// List devuelve una página de proveedores activos según el filtro.
func (r *SupplierRepo) List(q repository.ListQuery) ([]*entity.Supplier, error) {
	where, args := listClauses(q, "name", true)
	args = append(args, q.Limit, q.Offset)
	query := fmt.Sprintf(`SELECT %s FROM suppliers WHERE %s %s LIMIT $%d OFFSET $%d`,
		supplierColumns, where, orderBy(q), len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Count cuenta los proveedores activos que coinciden con el mismo filtro de List.
func (r *SupplierRepo) Count(q repository.ListQuery) (int64, error) {
	where, args := listClauses(q, "name", true)
	query := fmt.Sprintf(`SELECT count(*) FROM suppliers WHERE %s`, where)
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return total, nil
}

// All devuelve todos los proveedores activos.
func (r *SupplierRepo) All() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE deleted_at IS NULL ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("all suppliers: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// SoftDelete estampa deleted_at; la fila permanece.
func (r *SupplierRepo) SoftDelete(id int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET deleted_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) scanOne(row pgx.Row, op string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CreditLimit,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *SupplierRepo) scanAll(rows pgx.Rows) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Address, &s.CreditLimit,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
