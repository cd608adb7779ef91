package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para servicios. La importación y
// exportación CSV viven en el paquete catalog.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create crea un nuevo servicio.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	service := &entity.Service{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		UnitID:     in.UnitID,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List lista todos los servicios con los nombres de categoría y unidad.
func (uc *ServiceUseCase) List() ([]dto.ServiceResponse, error) {
	list, err := uc.repo.ListWithRelations()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		resp := toServiceResponse(&s.Service)
		resp.CategoryName = s.CategoryName
		resp.UnitAbbrev = s.UnitAbbreviation
		items = append(items, *resp)
	}
	return items, nil
}

// Update actualiza un servicio existente. Devuelve nil si no existe.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.CategoryID != nil {
		service.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		service.UnitID = *in.UnitID
	}
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina un servicio por ID.
func (uc *ServiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteSelected elimina varios servicios; los IDs inexistentes se ignoran.
func (uc *ServiceUseCase) DeleteSelected(ids []string) error {
	for _, id := range ids {
		if err := uc.repo.Delete(id); err != nil {
			return err
		}
	}
	return nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:         s.ID,
		Name:       s.Name,
		Price:      s.Price,
		CategoryID: s.CategoryID,
		UnitID:     s.UnitID,
	}
}
