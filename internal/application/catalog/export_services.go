package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ExportFilename nombre fijo del archivo descargado.
const ExportFilename = "services.csv"

// ExportServicesUseCase serializa todos los servicios a un CSV plano con la
// misma cabecera que acepta la importación, de modo que exportar y volver a
// importar es un viaje de ida y vuelta sin cambios.
type ExportServicesUseCase struct {
	services repository.ServiceRepository
}

// NewExportServicesUseCase construye el caso de uso.
func NewExportServicesUseCase(services repository.ServiceRepository) *ExportServicesUseCase {
	return &ExportServicesUseCase{services: services}
}

// Export devuelve el CSV en UTF-8. Categoría y unidad ausentes se emiten como
// cadena vacía.
func (uc *ExportServicesUseCase) Export() ([]byte, error) {
	rows, err := uc.services.ListWithRelations()
	if err != nil {
		return nil, fmt.Errorf("listar servicios: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(requiredColumns); err != nil {
		return nil, fmt.Errorf("escribir cabecera: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Name, row.Price.String(), row.CategoryName, row.UnitAbbreviation}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("escribir fila %q: %w", row.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("volcar CSV: %w", err)
	}
	return buf.Bytes(), nil
}
