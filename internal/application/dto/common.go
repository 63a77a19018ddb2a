package dto

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Maestros-api/internal/domain/repository"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListRequest parámetros de listado tal como llegan por query string (todos opcionales,
// tipados como string sobre el wire).
type ListRequest struct {
	PageSize   string `query:"pageSize"`
	Page       string `query:"page"`
	SearchTerm string `query:"searchTerm"`
	SortField  string `query:"sortField"`
	SortOrder  string `query:"sortOrder"`
}

// DefaultSortField campo de ordenamiento cuando el caller no envía uno válido.
const DefaultSortField = "name"

// Normalize aplica defaults (pageSize=10, page=1, orden ascendente) y resuelve
// SortField contra el allow-list de columnas ordenables de la entidad: un valor
// desconocido colapsa al default en vez de reenviarse al ORDER BY.
// Cualquier valor de sortOrder distinto del literal "desc" se trata como "asc".
// Nota: pageSize no tiene tope superior; el contrato permite páginas arbitrariamente
// grandes.
func (r ListRequest) Normalize(sortable map[string]string) repository.ListQuery {
	pageSize := atoiDefault(r.PageSize, 10)
	if pageSize < 1 {
		pageSize = 10
	}
	page := atoiDefault(r.Page, 1)
	if page < 1 {
		page = 1
	}
	column, ok := sortable[r.SortField]
	if !ok {
		column = sortable[DefaultSortField]
	}
	return repository.ListQuery{
		Search:    strings.TrimSpace(r.SearchTerm),
		SortField: column,
		SortDesc:  r.SortOrder == "desc",
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
