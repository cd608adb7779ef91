package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service (DIP).
// GetByNameFold compara el nombre sin distinguir mayúsculas/minúsculas; es la
// búsqueda que usa el upsert de importación.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	GetByNameFold(name string) (*entity.Service, error)
	List() ([]*entity.Service, error)
	ListWithRelations() ([]*entity.ServiceWithRelations, error)
	ListByCategory(categoryID string) ([]*entity.Service, error)
	Update(service *entity.Service) error
	Delete(id string) error
}
