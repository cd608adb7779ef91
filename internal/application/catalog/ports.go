package catalog

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// La importación CSV lo usa para que el lote completo sea atómico: o se
// confirman todas las mutaciones o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		unitRepo repository.UnitRepository,
		serviceRepo repository.ServiceRepository,
	) error) error
}
