package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CurrencyRepository define el puerto de persistencia para Currency (DIP).
type CurrencyRepository interface {
	Create(currency *entity.Currency) error
	GetByID(id string) (*entity.Currency, error)
	GetByCode(code string) (*entity.Currency, error)
	List() ([]*entity.Currency, error)
	Update(currency *entity.Currency) error
	Delete(id string) error
}
