package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// listClauses arma las cláusulas WHERE/ORDER BY/LIMIT/OFFSET comunes a los listados
// paginados. q.SortField ya viene del allow-list de la entidad (nunca input crudo);
// searchColumn es la columna nombre de la entidad y el filtro base excluye borrados
// lógicos cuando softDelete es true.
func listClauses(q repository.ListQuery, searchColumn string, softDelete bool) (where string, args []any) {
	conds := make([]string, 0, 2)
	if softDelete {
		conds = append(conds, "deleted_at IS NULL")
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", searchColumn, len(args)))
	}
	if len(conds) == 0 {
		conds = append(conds, "TRUE")
	}
	return strings.Join(conds, " AND "), args
}

// orderBy devuelve la cláusula ORDER BY para el listado.
func orderBy(q repository.ListQuery) string {
	column := q.SortField
	if column == "" {
		column = "name"
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, dir)
}
