package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Maestros-api/internal/application/dto"
)

// parseID lee el :id numérico de la ruta. ok=false si no es un entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseList arma el dto.ListRequest desde el query string (todo opcional).
func parseList(c *fiber.Ctx) dto.ListRequest {
	return dto.ListRequest{
		PageSize:   c.Query("pageSize"),
		Page:       c.Query("page"),
		SearchTerm: c.Query("searchTerm"),
		SortField:  c.Query("sortField"),
		SortOrder:  c.Query("sortOrder"),
	}
}
