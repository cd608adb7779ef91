package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

// CurrencyRepo implementación del puerto CurrencyRepository sobre PostgreSQL.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

// Create persiste una nueva moneda.
func (r *CurrencyRepo) Create(currency *entity.Currency) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO currencies (id, code, name, symbol) VALUES ($1, $2, $3, $4)`,
		currency.ID, currency.Code, currency.Name, currency.Symbol,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert currency: %w", err)
	}
	return nil
}

// GetByID obtiene una moneda por ID.
func (r *CurrencyRepo) GetByID(id string) (*entity.Currency, error) {
	return r.get(`SELECT id, code, name, symbol FROM currencies WHERE id = $1`, id)
}

// GetByCode obtiene una moneda por código.
func (r *CurrencyRepo) GetByCode(code string) (*entity.Currency, error) {
	return r.get(`SELECT id, code, name, symbol FROM currencies WHERE code = $1`, code)
}

func (r *CurrencyRepo) get(query, arg string) (*entity.Currency, error) {
	var c entity.Currency
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&c.ID, &c.Code, &c.Name, &c.Symbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return &c, nil
}

// List lista todas las monedas por código.
func (r *CurrencyRepo) List() ([]*entity.Currency, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, name, symbol FROM currencies ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Currency
	for rows.Next() {
		var c entity.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una moneda existente.
func (r *CurrencyRepo) Update(currency *entity.Currency) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE currencies SET code = $2, name = $3, symbol = $4 WHERE id = $1`,
		currency.ID, currency.Code, currency.Name, currency.Symbol,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update currency: %w", err)
	}
	return nil
}

// Delete elimina una moneda por ID.
func (r *CurrencyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM currencies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete currency: %w", err)
	}
	return nil
}
