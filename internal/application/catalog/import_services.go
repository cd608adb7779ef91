package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Columnas obligatorias del CSV de servicios. Columnas extra se ignoran.
var requiredColumns = []string{"name", "price", "category", "unit"}

// importRow fila ya validada del CSV, lista para reconciliar.
type importRow struct {
	name     string
	price    decimal.Decimal
	category string
	unit     string
}

// ImportServicesUseCase motor de reconciliación del CSV de servicios.
//
// Hace upsert de servicios por nombre (sin distinguir mayúsculas/minúsculas,
// recortando espacios) y resuelve o crea las categorías y unidades referidas.
// Dentro de una misma importación, un caché local por clave normalizada
// garantiza que filas que nombran la misma categoría/unidad nueva reusen la
// fila recién creada en lugar de duplicarla.
//
// Toda la importación corre dentro de una única transacción: un error en
// cualquier fila deja el almacén intacto.
type ImportServicesUseCase struct {
	tx TxRunner
}

// NewImportServicesUseCase construye el caso de uso.
func NewImportServicesUseCase(tx TxRunner) *ImportServicesUseCase {
	return &ImportServicesUseCase{tx: tx}
}

// Import valida y reconcilia el CSV subido. Los fallos de validación se
// devuelven como domain.ValidationError con el mensaje para el cliente.
func (uc *ImportServicesUseCase) Import(ctx context.Context, filename string, file io.Reader) error {
	if filename == "" {
		return domain.Validation("No file provided")
	}

	rows, err := parseServicesCSV(file)
	if err != nil {
		return err
	}

	return uc.tx.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		unitRepo repository.UnitRepository,
		serviceRepo repository.ServiceRepository,
	) error {
		// Cachés locales a esta importación: clave normalizada (minúsculas,
		// sin espacios alrededor) -> entidad encontrada o recién creada.
		categoryCache := make(map[string]*entity.Category)
		unitCache := make(map[string]*entity.UnitOfMeasurement)

		for _, row := range rows {
			var categoryID string
			if row.category != "" {
				category, err := resolveCategory(categoryRepo, categoryCache, row.category)
				if err != nil {
					return err
				}
				categoryID = category.ID
			}

			var unitID string
			if row.unit != "" {
				unit, err := resolveUnit(unitRepo, unitCache, row.unit)
				if err != nil {
					return err
				}
				unitID = unit.ID
			}

			svc, err := serviceRepo.GetByNameFold(row.name)
			if err != nil {
				return fmt.Errorf("buscar servicio %q: %w", row.name, err)
			}
			if svc != nil {
				// El nombre existente se conserva tal cual; solo se pisa
				// precio y referencias.
				svc.Price = row.price
				svc.CategoryID = categoryID
				svc.UnitID = unitID
				if err := serviceRepo.Update(svc); err != nil {
					return fmt.Errorf("actualizar servicio %q: %w", row.name, err)
				}
				continue
			}
			svc = &entity.Service{
				ID:         uuid.New().String(),
				Name:       row.name,
				Price:      row.price,
				CategoryID: categoryID,
				UnitID:     unitID,
			}
			if err := serviceRepo.Create(svc); err != nil {
				return fmt.Errorf("crear servicio %q: %w", row.name, err)
			}
		}
		return nil
	})
}

// parseServicesCSV valida la estructura del archivo y sus filas antes de tocar
// el almacén. Tolera BOM UTF-8 (exportes de Excel).
func parseServicesCSV(file io.Reader) ([]importRow, error) {
	raw, err := io.ReadAll(file)
	if err != nil || !utf8.Valid(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))) {
		return nil, domain.Validation("Invalid CSV")
	}

	reader := csv.NewReader(transform.NewReader(bytes.NewReader(raw), unicode.UTF8BOM.NewDecoder()))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		// Archivo vacío: sin cabecera no hay columnas obligatorias.
		return nil, domain.Validation("Missing columns")
	}
	if err != nil {
		return nil, domain.Validation("Invalid CSV")
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, domain.Validation("Missing columns")
		}
	}

	var rows []importRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.Validation("Invalid CSV")
		}
		name := strings.TrimSpace(field(record, index["name"]))
		price := field(record, index["price"])
		if name == "" || price == "" {
			return nil, domain.Validation("Missing data")
		}
		parsed, err := decimal.NewFromString(strings.TrimSpace(price))
		if err != nil {
			return nil, domain.Validation("Invalid price")
		}
		rows = append(rows, importRow{
			name:     name,
			price:    parsed,
			category: strings.TrimSpace(field(record, index["category"])),
			unit:     strings.TrimSpace(field(record, index["unit"])),
		})
	}
	return rows, nil
}

// field devuelve la columna i del registro, o "" si la fila es corta.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// resolveCategory busca la categoría por nombre (caché, luego almacén) y la
// crea si no existe, persistiéndola de inmediato para disponer de su ID.
func resolveCategory(repo repository.CategoryRepository, cache map[string]*entity.Category, name string) (*entity.Category, error) {
	key := strings.ToLower(name)
	if category, ok := cache[key]; ok {
		return category, nil
	}
	category, err := repo.GetByNameFold(name)
	if err != nil {
		return nil, fmt.Errorf("buscar categoría %q: %w", name, err)
	}
	if category == nil {
		category = &entity.Category{ID: uuid.New().String(), Name: name}
		if err := repo.Create(category); err != nil {
			return nil, fmt.Errorf("crear categoría %q: %w", name, err)
		}
	}
	cache[key] = category
	return category, nil
}

// resolveUnit igual que resolveCategory, usando la abreviatura como clave.
// Una unidad autocreada recibe el texto de la abreviatura también como Name,
// comportamiento heredado del importador original.
func resolveUnit(repo repository.UnitRepository, cache map[string]*entity.UnitOfMeasurement, abbreviation string) (*entity.UnitOfMeasurement, error) {
	key := strings.ToLower(abbreviation)
	if unit, ok := cache[key]; ok {
		return unit, nil
	}
	unit, err := repo.GetByAbbreviationFold(abbreviation)
	if err != nil {
		return nil, fmt.Errorf("buscar unidad %q: %w", abbreviation, err)
	}
	if unit == nil {
		unit = &entity.UnitOfMeasurement{
			ID:           uuid.New().String(),
			Name:         abbreviation,
			Abbreviation: abbreviation,
		}
		if err := repo.Create(unit); err != nil {
			return nil, fmt.Errorf("crear unidad %q: %w", abbreviation, err)
		}
	}
	cache[key] = unit
	return unit, nil
}
