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

var _ repository.LanguageRepository = (*LanguageRepo)(nil)

// LanguageRepo implementación del puerto LanguageRepository sobre PostgreSQL.
type LanguageRepo struct {
	q Querier
}

// NewLanguageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLanguageRepository(q Querier) *LanguageRepo {
	return &LanguageRepo{q: q}
}

// Create persiste un nuevo idioma.
func (r *LanguageRepo) Create(language *entity.Language) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO languages (id, code, name) VALUES ($1, $2, $3)`,
		language.ID, language.Code, language.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert language: %w", err)
	}
	return nil
}

// GetByID obtiene un idioma por ID.
func (r *LanguageRepo) GetByID(id string) (*entity.Language, error) {
	return r.get(`SELECT id, code, name FROM languages WHERE id = $1`, id)
}

// GetByCode obtiene un idioma por código.
func (r *LanguageRepo) GetByCode(code string) (*entity.Language, error) {
	return r.get(`SELECT id, code, name FROM languages WHERE code = $1`, code)
}

func (r *LanguageRepo) get(query, arg string) (*entity.Language, error) {
	var l entity.Language
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&l.ID, &l.Code, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get language: %w", err)
	}
	return &l, nil
}

// List lista todos los idiomas por código.
func (r *LanguageRepo) List() ([]*entity.Language, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, name FROM languages ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Language
	for rows.Next() {
		var l entity.Language
		if err := rows.Scan(&l.ID, &l.Code, &l.Name); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza un idioma existente.
func (r *LanguageRepo) Update(language *entity.Language) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE languages SET code = $2, name = $3 WHERE id = $1`,
		language.ID, language.Code, language.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update language: %w", err)
	}
	return nil
}

// Delete elimina un idioma por ID.
func (r *LanguageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	return nil
}
