package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para UnitOfMeasurement (DIP).
// GetByAbbreviationFold compara la abreviatura sin distinguir mayúsculas/minúsculas.
type UnitRepository interface {
	Create(unit *entity.UnitOfMeasurement) error
	GetByID(id string) (*entity.UnitOfMeasurement, error)
	GetByAbbreviationFold(abbreviation string) (*entity.UnitOfMeasurement, error)
	List() ([]*entity.UnitOfMeasurement, error)
	Update(unit *entity.UnitOfMeasurement) error
	Delete(id string) error
}
