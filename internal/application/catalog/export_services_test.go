package catalog_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// Caso: cabecera fija y una fila por servicio, con categoría y unidad
// resueltas a nombre y abreviatura, o cadena vacía si faltan.
func TestExport_CabeceraYFilas(t *testing.T) {
	store := memory.NewStore()

	cat := &entity.Category{ID: uuid.New().String(), Name: "Cleaning"}
	require.NoError(t, store.Categories().Create(cat))
	unit := &entity.UnitOfMeasurement{ID: uuid.New().String(), Name: "Piece", Abbreviation: "pc"}
	require.NoError(t, store.Units().Create(unit))

	require.NoError(t, store.Services().Create(&entity.Service{
		ID:         uuid.New().String(),
		Name:       "Window Washing",
		Price:      decimal.RequireFromString("12.5"),
		CategoryID: cat.ID,
		UnitID:     unit.ID,
	}))
	require.NoError(t, store.Services().Create(&entity.Service{
		ID:    uuid.New().String(),
		Name:  "Loose Service",
		Price: decimal.NewFromInt(3),
	}))

	data, err := catalog.NewExportServicesUseCase(store.Services()).Export()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"name", "price", "category", "unit"}, records[0])
	assert.Equal(t, []string{"Window Washing", "12.5", "Cleaning", "pc"}, records[1])
	assert.Equal(t, []string{"Loose Service", "3", "", ""}, records[2])
}

// Caso: catálogo vacío exporta solo la cabecera.
func TestExport_CatalogoVacio(t *testing.T) {
	store := memory.NewStore()

	data, err := catalog.NewExportServicesUseCase(store.Services()).Export()
	require.NoError(t, err)
	assert.Equal(t, "name,price,category,unit\n", string(data))
}

// Caso: exportar y volver a importar reproduce el mismo catálogo (viaje de
// ida y vuelta).
func TestExport_RoundTripConImport(t *testing.T) {
	source := memory.NewStore()
	importSource := catalog.NewImportServicesUseCase(source.TxRunner())
	require.NoError(t, importSource.Import(context.Background(), "seed.csv",
		bytes.NewReader([]byte("name,price,category,unit\nA,1.25,Cat,pc\nB,2,,kg\nC,0.99,Other,\n"))))

	data, err := catalog.NewExportServicesUseCase(source.Services()).Export()
	require.NoError(t, err)

	dest := memory.NewStore()
	importDest := catalog.NewImportServicesUseCase(dest.TxRunner())
	require.NoError(t, importDest.Import(context.Background(), "roundtrip.csv", bytes.NewReader(data)))

	assert.Equal(t, source.CountServices(), dest.CountServices())
	assert.Equal(t, source.CountCategories(), dest.CountCategories())
	assert.Equal(t, source.CountUnits(), dest.CountUnits())

	original, err := source.Services().GetByNameFold("A")
	require.NoError(t, err)
	copied, err := dest.Services().GetByNameFold("A")
	require.NoError(t, err)
	require.NotNil(t, copied)
	assert.True(t, original.Price.Equal(copied.Price))
}
