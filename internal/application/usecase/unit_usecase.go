package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create crea una nueva unidad. La abreviatura debe ser única (sin distinguir
// mayúsculas/minúsculas, igual que en la importación CSV).
func (uc *UnitUseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	existing, _ := uc.repo.GetByAbbreviationFold(in.Abbreviation)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := &entity.UnitOfMeasurement{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Abbreviation: in.Abbreviation,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista todas las unidades.
func (uc *UnitUseCase) List() ([]dto.UnitResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return items, nil
}

// Update actualiza una unidad existente. Devuelve nil si no existe.
func (uc *UnitUseCase) Update(id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	if in.Name != nil {
		unit.Name = *in.Name
	}
	if in.Abbreviation != nil {
		unit.Abbreviation = *in.Abbreviation
	}
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Delete elimina una unidad por ID.
func (uc *UnitUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteSelected elimina varias unidades; los IDs inexistentes se ignoran.
func (uc *UnitUseCase) DeleteSelected(ids []string) error {
	for _, id := range ids {
		if err := uc.repo.Delete(id); err != nil {
			return err
		}
	}
	return nil
}

func toUnitResponse(u *entity.UnitOfMeasurement) *dto.UnitResponse {
	return &dto.UnitResponse{ID: u.ID, Name: u.Name, Abbreviation: u.Abbreviation}
}
