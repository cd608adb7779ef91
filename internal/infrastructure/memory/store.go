// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en pruebas y como almacén de desarrollo sin PostgreSQL.
// El orden de inserción se conserva para que los listados sean estables.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Store agrupa todos los repositorios en memoria sobre un mutex común.
type Store struct {
	mu sync.Mutex

	languages  []*entity.Language
	currencies []*entity.Currency
	units      []*entity.UnitOfMeasurement
	categories []*entity.Category
	services   []*entity.Service
	settings   map[string]string
	users      []*entity.User
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{settings: make(map[string]string)}
}

// Languages devuelve la vista LanguageRepository.
func (s *Store) Languages() repository.LanguageRepository { return (*languageRepo)(s) }

// Currencies devuelve la vista CurrencyRepository.
func (s *Store) Currencies() repository.CurrencyRepository { return (*currencyRepo)(s) }

// Units devuelve la vista UnitRepository.
func (s *Store) Units() repository.UnitRepository { return (*unitRepo)(s) }

// Categories devuelve la vista CategoryRepository.
func (s *Store) Categories() repository.CategoryRepository { return (*categoryRepo)(s) }

// Services devuelve la vista ServiceRepository.
func (s *Store) Services() repository.ServiceRepository { return (*serviceRepo)(s) }

// Settings devuelve la vista SettingRepository.
func (s *Store) Settings() repository.SettingRepository { return (*settingRepo)(s) }

// Users devuelve la vista UserRepository.
func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }

// TxRunner devuelve un runner que ejecuta el callback directamente sobre el
// almacén. No hay semántica de rollback: los casos de uso validan el lote
// completo antes de abrir la transacción.
func (s *Store) TxRunner() catalog.TxRunner { return (*txRunner)(s) }

type txRunner Store

func (r *txRunner) Run(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
	serviceRepo repository.ServiceRepository,
) error) error {
	s := (*Store)(r)
	return fn(s.Categories(), s.Units(), s.Services())
}

// CountCategories, CountUnits y CountServices exponen tamaños para aserciones.
func (s *Store) CountCategories() int { s.mu.Lock(); defer s.mu.Unlock(); return len(s.categories) }
func (s *Store) CountUnits() int      { s.mu.Lock(); defer s.mu.Unlock(); return len(s.units) }
func (s *Store) CountServices() int   { s.mu.Lock(); defer s.mu.Unlock(); return len(s.services) }

// foldEqual compara como lower(a) = lower(b) en SQL.
func foldEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
