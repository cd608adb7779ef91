package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// LanguageUseCase casos de uso CRUD para idiomas.
type LanguageUseCase struct {
	repo repository.LanguageRepository
}

// NewLanguageUseCase construye el caso de uso.
func NewLanguageUseCase(repo repository.LanguageRepository) *LanguageUseCase {
	return &LanguageUseCase{repo: repo}
}

// Create crea un nuevo idioma. El código debe ser único.
func (uc *LanguageUseCase) Create(in dto.CreateLanguageRequest) (*dto.LanguageResponse, error) {
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	language := &entity.Language{
		ID:   uuid.New().String(),
		Code: in.Code,
		Name: in.Name,
	}
	if err := uc.repo.Create(language); err != nil {
		return nil, err
	}
	return toLanguageResponse(language), nil
}

// List lista todos los idiomas.
func (uc *LanguageUseCase) List() ([]dto.LanguageResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LanguageResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLanguageResponse(l))
	}
	return items, nil
}

// Update actualiza un idioma existente. Devuelve nil si no existe.
func (uc *LanguageUseCase) Update(id string, in dto.UpdateLanguageRequest) (*dto.LanguageResponse, error) {
	language, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, nil
	}
	if in.Code != nil {
		language.Code = *in.Code
	}
	if in.Name != nil {
		language.Name = *in.Name
	}
	if err := uc.repo.Update(language); err != nil {
		return nil, err
	}
	return toLanguageResponse(language), nil
}

// Delete elimina un idioma por ID.
func (uc *LanguageUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLanguageResponse(l *entity.Language) *dto.LanguageResponse {
	return &dto.LanguageResponse{ID: l.ID, Code: l.Code, Name: l.Name}
}
