package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CurrencyUseCase casos de uso CRUD para monedas.
type CurrencyUseCase struct {
	repo repository.CurrencyRepository
}

// NewCurrencyUseCase construye el caso de uso.
func NewCurrencyUseCase(repo repository.CurrencyRepository) *CurrencyUseCase {
	return &CurrencyUseCase{repo: repo}
}

// Create crea una nueva moneda. El código debe ser único.
func (uc *CurrencyUseCase) Create(in dto.CreateCurrencyRequest) (*dto.CurrencyResponse, error) {
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	currency := &entity.Currency{
		ID:     uuid.New().String(),
		Code:   in.Code,
		Name:   in.Name,
		Symbol: in.Symbol,
	}
	if err := uc.repo.Create(currency); err != nil {
		return nil, err
	}
	return toCurrencyResponse(currency), nil
}

// List lista todas las monedas.
func (uc *CurrencyUseCase) List() ([]dto.CurrencyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCurrencyResponse(c))
	}
	return items, nil
}

// Update actualiza una moneda existente. Devuelve nil si no existe.
func (uc *CurrencyUseCase) Update(id string, in dto.UpdateCurrencyRequest) (*dto.CurrencyResponse, error) {
	currency, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, nil
	}
	if in.Code != nil {
		currency.Code = *in.Code
	}
	if in.Name != nil {
		currency.Name = *in.Name
	}
	if in.Symbol != nil {
		currency.Symbol = *in.Symbol
	}
	if err := uc.repo.Update(currency); err != nil {
		return nil, err
	}
	return toCurrencyResponse(currency), nil
}

// Delete elimina una moneda por ID.
func (uc *CurrencyUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCurrencyResponse(c *entity.Currency) *dto.CurrencyResponse {
	return &dto.CurrencyResponse{ID: c.ID, Code: c.Code, Name: c.Name, Symbol: c.Symbol}
}
