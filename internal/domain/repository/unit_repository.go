package repository

import (
	"time"

	"github.com/jhoicas/Maestros-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit (DIP).
// Misma semántica de borrado lógico que SupplierRepository.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	Update(unit *entity.Unit) error
	GetByID(id int64) (*entity.Unit, error)
	GetActiveByID(id int64) (*entity.Unit, error)
	// GetByName busca entre unidades activas por nombre exacto excluyendo excludeID.
	GetByName(name string, excludeID int64) (*entity.Unit, error)
	List(q ListQuery) ([]*entity.Unit, error)
	Count(q ListQuery) (int64, error)
	All() ([]*entity.Unit, error)
	SoftDelete(id int64, at time.Time) error
}
