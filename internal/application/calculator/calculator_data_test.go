package calculator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/calculator"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

func newDataUseCase(store *memory.Store) *calculator.CalculatorDataUseCase {
	return calculator.NewCalculatorDataUseCase(
		store.Languages(), store.Currencies(), store.Units(),
		store.Categories(), store.Services(), store.Settings(),
	)
}

// Caso: catálogo vacío devuelve colecciones vacías (no null) y settings vacío.
func TestSnapshot_CatalogoVacio(t *testing.T) {
	out, err := newDataUseCase(memory.NewStore()).Snapshot()
	require.NoError(t, err)

	assert.NotNil(t, out.Languages)
	assert.Empty(t, out.Languages)
	assert.NotNil(t, out.Currencies)
	assert.Empty(t, out.Currencies)
	assert.NotNil(t, out.Units)
	assert.Empty(t, out.Units)
	assert.NotNil(t, out.Categories)
	assert.Empty(t, out.Categories)
	assert.Empty(t, out.Settings)
}

// Caso: instantánea completa. El id de idiomas y monedas lleva el código, el
// precio va con dos decimales y unit_id es null cuando el servicio no tiene
// unidad asociada.
func TestSnapshot_CatalogoCompleto(t *testing.T) {
	store := memory.NewStore()

	require.NoError(t, store.Languages().Create(&entity.Language{
		ID: uuid.New().String(), Code: "en", Name: "English",
	}))
	require.NoError(t, store.Currencies().Create(&entity.Currency{
		ID: uuid.New().String(), Code: "EUR", Name: "Euro", Symbol: "€",
	}))
	unit := &entity.UnitOfMeasurement{ID: uuid.New().String(), Name: "Piece", Abbreviation: "pc"}
	require.NoError(t, store.Units().Create(unit))
	cat := &entity.Category{ID: uuid.New().String(), Name: "Cleaning"}
	require.NoError(t, store.Categories().Create(cat))

	require.NoError(t, store.Services().Create(&entity.Service{
		ID:         uuid.New().String(),
		Name:       "Windows",
		Price:      decimal.RequireFromString("12.5"),
		CategoryID: cat.ID,
		UnitID:     unit.ID,
	}))
	require.NoError(t, store.Services().Create(&entity.Service{
		ID:         uuid.New().String(),
		Name:       "Floors",
		Price:      decimal.NewFromInt(4),
		CategoryID: cat.ID,
	}))

	require.NoError(t, store.Settings().Upsert(&entity.Setting{
		Key: entity.SettingDefaultLanguageID, Value: "en",
	}))
	require.NoError(t, store.Settings().Upsert(&entity.Setting{
		Key: entity.SettingDefaultCurrencyID, Value: "EUR",
	}))

	out, err := newDataUseCase(store).Snapshot()
	require.NoError(t, err)

	require.Len(t, out.Languages, 1)
	assert.Equal(t, "en", out.Languages[0].ID, "el id del idioma lleva el código")
	assert.Equal(t, "English", out.Languages[0].Name)

	require.Len(t, out.Currencies, 1)
	assert.Equal(t, "EUR", out.Currencies[0].ID, "el id de la moneda lleva el código")
	assert.Equal(t, "€", out.Currencies[0].Symbol)

	require.Len(t, out.Units, 1)
	assert.Equal(t, unit.ID, out.Units[0].ID)
	assert.Equal(t, "pc", out.Units[0].Abbreviation)

	require.Len(t, out.Categories, 1)
	group := out.Categories[0]
	assert.Equal(t, "Cleaning", group.Name)
	require.Len(t, group.Services, 2)

	windows := group.Services[0]
	assert.Equal(t, "Windows", windows.Name)
	assert.Equal(t, "12.50", windows.Price, "el precio va con dos decimales")
	require.NotNil(t, windows.UnitID)
	assert.Equal(t, unit.ID, *windows.UnitID)

	floors := group.Services[1]
	assert.Equal(t, "4.00", floors.Price)
	assert.Nil(t, floors.UnitID, "sin unidad asociada unit_id es null")

	assert.Equal(t, map[string]string{
		entity.SettingDefaultLanguageID: "en",
		entity.SettingDefaultCurrencyID: "EUR",
	}, out.Settings)
}

// Caso: un servicio sin categoría no aparece en la instantánea (el widget
// solo pinta servicios agrupados por categoría).
func TestSnapshot_ServicioSinCategoriaNoAparece(t *testing.T) {
	store := memory.NewStore()
	cat := &entity.Category{ID: uuid.New().String(), Name: "Visible"}
	require.NoError(t, store.Categories().Create(cat))
	require.NoError(t, store.Services().Create(&entity.Service{
		ID: uuid.New().String(), Name: "Huerfano", Price: decimal.NewFromInt(1),
	}))

	out, err := newDataUseCase(store).Snapshot()
	require.NoError(t, err)
	require.Len(t, out.Categories, 1)
	assert.Empty(t, out.Categories[0].Services)
}
