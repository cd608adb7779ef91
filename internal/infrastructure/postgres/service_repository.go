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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
// category_id y unit_id son NULLables: se escriben con NULLIF($n,'') y se leen
// con COALESCE(col::text,'') para mapear NULL <-> cadena vacía.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(service *entity.Service) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO services (id, name, price, category_id, unit_id)
		 VALUES ($1, $2, $3, NULLIF($4, '')::uuid, NULLIF($5, '')::uuid)`,
		service.ID, service.Name, service.Price, service.CategoryID, service.UnitID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	return r.get(`
		SELECT id, name, price, COALESCE(category_id::text, ''), COALESCE(unit_id::text, '')
		FROM services WHERE id = $1`, id)
}

// GetByNameFold obtiene un servicio por nombre sin distinguir
// mayúsculas/minúsculas (clave natural del upsert de importación).
func (r *ServiceRepo) GetByNameFold(name string) (*entity.Service, error) {
	return r.get(`
		SELECT id, name, price, COALESCE(category_id::text, ''), COALESCE(unit_id::text, '')
		FROM services WHERE lower(name) = lower($1)`, name)
}

func (r *ServiceRepo) get(query, arg string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.Price, &s.CategoryID, &s.UnitID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List lista todos los servicios en orden de inserción estable.
func (r *ServiceRepo) List() ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, price, COALESCE(category_id::text, ''), COALESCE(unit_id::text, '')
		FROM services ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	return scanServices(rows)
}

// ListWithRelations lista todos los servicios con el nombre de su categoría y
// la abreviatura de su unidad (vacíos si no tienen), para listados y export CSV.
func (r *ServiceRepo) ListWithRelations() ([]*entity.ServiceWithRelations, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT s.id, s.name, s.price,
		       COALESCE(s.category_id::text, ''), COALESCE(s.unit_id::text, ''),
		       COALESCE(c.name, ''), COALESCE(u.abbreviation, '')
		FROM services s
		LEFT JOIN categories c ON c.id = s.category_id
		LEFT JOIN units_of_measurement u ON u.id = s.unit_id
		ORDER BY s.created_at, s.id`)
	if err != nil {
		return nil, fmt.Errorf("list services with relations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceWithRelations
	for rows.Next() {
		var s entity.ServiceWithRelations
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.CategoryID, &s.UnitID,
			&s.CategoryName, &s.UnitAbbreviation); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListByCategory lista los servicios de una categoría.
func (r *ServiceRepo) ListByCategory(categoryID string) ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, price, COALESCE(category_id::text, ''), COALESCE(unit_id::text, '')
		FROM services WHERE category_id = $1 ORDER BY created_at, id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list services by category: %w", err)
	}
	defer rows.Close()
	return scanServices(rows)
}

func scanServices(rows pgx.Rows) ([]*entity.Service, error) {
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.CategoryID, &s.UnitID); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un servicio existente.
func (r *ServiceRepo) Update(service *entity.Service) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE services
		 SET name = $2, price = $3, category_id = NULLIF($4, '')::uuid, unit_id = NULLIF($5, '')::uuid
		 WHERE id = $1`,
		service.ID, service.Name, service.Price, service.CategoryID, service.UnitID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
