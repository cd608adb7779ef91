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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una nueva unidad de medida.
func (r *UnitRepo) Create(unit *entity.UnitOfMeasurement) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO units_of_measurement (id, name, abbreviation) VALUES ($1, $2, $3)`,
		unit.ID, unit.Name, unit.Abbreviation,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *UnitRepo) GetByID(id string) (*entity.UnitOfMeasurement, error) {
	return r.get(`SELECT id, name, abbreviation FROM units_of_measurement WHERE id = $1`, id)
}

// GetByAbbreviationFold obtiene una unidad por abreviatura sin distinguir
// mayúsculas/minúsculas (es la búsqueda del upsert de importación).
func (r *UnitRepo) GetByAbbreviationFold(abbreviation string) (*entity.UnitOfMeasurement, error) {
	return r.get(
		`SELECT id, name, abbreviation FROM units_of_measurement WHERE lower(abbreviation) = lower($1)`,
		abbreviation,
	)
}

func (r *UnitRepo) get(query, arg string) (*entity.UnitOfMeasurement, error) {
	var u entity.UnitOfMeasurement
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&u.ID, &u.Name, &u.Abbreviation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// List lista todas las unidades por nombre.
func (r *UnitRepo) List() ([]*entity.UnitOfMeasurement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, abbreviation FROM units_of_measurement ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.UnitOfMeasurement
	for rows.Next() {
		var u entity.UnitOfMeasurement
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza una unidad existente.
func (r *UnitRepo) Update(unit *entity.UnitOfMeasurement) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units_of_measurement SET name = $2, abbreviation = $3 WHERE id = $1`,
		unit.ID, unit.Name, unit.Abbreviation,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete elimina una unidad por ID. Los servicios que la referencian quedan
// sin unidad (FK ON DELETE SET NULL).
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units_of_measurement WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}
