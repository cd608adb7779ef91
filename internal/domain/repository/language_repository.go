package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// LanguageRepository define el puerto de persistencia para Language (DIP).
type LanguageRepository interface {
	Create(language *entity.Language) error
	GetByID(id string) (*entity.Language, error)
	GetByCode(code string) (*entity.Language, error)
	List() ([]*entity.Language, error)
	Update(language *entity.Language) error
	Delete(id string) error
}
