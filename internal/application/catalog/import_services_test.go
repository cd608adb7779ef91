package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newImportFixture() (*memory.Store, *catalog.ImportServicesUseCase) {
	store := memory.NewStore()
	return store, catalog.NewImportServicesUseCase(store.TxRunner())
}

// doImport ejecuta la importación con un nombre de archivo válido.
func doImport(t *testing.T, uc *catalog.ImportServicesUseCase, csvText string) error {
	t.Helper()
	return uc.Import(context.Background(), "services.csv", strings.NewReader(csvText))
}

func mustCreateService(t *testing.T, store *memory.Store, name string, price string) *entity.Service {
	t.Helper()
	svc := &entity.Service{
		ID:    uuid.New().String(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	require.NoError(t, store.Services().Create(svc))
	return svc
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación estructural
// ──────────────────────────────────────────────────────────────────────────────

// Caso: no llega archivo → "No file provided".
func TestImport_SinArchivo(t *testing.T) {
	_, uc := newImportFixture()

	err := uc.Import(context.Background(), "", nil)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "debe ser un error de validación")
	assert.Equal(t, "No file provided", err.Error())
}

// Caso: bytes que no son UTF-8 → "Invalid CSV".
func TestImport_CSVInvalido(t *testing.T) {
	_, uc := newImportFixture()

	err := uc.Import(context.Background(), "bad.csv", strings.NewReader("name,price\n\xff\xfe\x00"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Invalid CSV", err.Error())
}

// Caso: archivo vacío (sin cabecera) → "Missing columns".
func TestImport_ArchivoVacio(t *testing.T) {
	_, uc := newImportFixture()

	err := doImport(t, uc, "")
	require.Error(t, err)
	assert.Equal(t, "Missing columns", err.Error())
}

// Caso: cabecera sin la columna unit → "Missing columns".
func TestImport_FaltanColumnas(t *testing.T) {
	store, uc := newImportFixture()

	err := doImport(t, uc, "name,price,category\nCleaning,5,Home\n")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Missing columns", err.Error())
	assert.Zero(t, store.CountServices(), "no debe procesarse ninguna fila")
}

// Caso: fila sin nombre o sin precio → "Missing data".
func TestImport_FaltanDatos(t *testing.T) {
	_, uc := newImportFixture()

	err := doImport(t, uc, "name,price,category,unit\n,5,,\n")
	require.Error(t, err)
	assert.Equal(t, "Missing data", err.Error())

	err = doImport(t, uc, "name,price,category,unit\nCleaning,,,\n")
	require.Error(t, err)
	assert.Equal(t, "Missing data", err.Error())
}

// Caso: precio no numérico → "Invalid price".
func TestImport_PrecioInvalido(t *testing.T) {
	_, uc := newImportFixture()

	err := doImport(t, uc, "name,price,category,unit\nCleaning,abc,,\n")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Invalid price", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación
// ──────────────────────────────────────────────────────────────────────────────

// Caso: fila nueva crea servicio, categoría y unidad de una sola pasada.
func TestImport_CreaServicioCategoriaYUnidad(t *testing.T) {
	store, uc := newImportFixture()

	require.NoError(t, doImport(t, uc, "name,price,category,unit\nNew,2,Cleaning,pc\n"))

	svc, err := store.Services().GetByNameFold("New")
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.True(t, svc.Price.Equal(decimal.NewFromInt(2)))

	cat, err := store.Categories().GetByNameFold("Cleaning")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, cat.ID, svc.CategoryID)

	unit, err := store.Units().GetByAbbreviationFold("pc")
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.Equal(t, unit.ID, svc.UnitID)
	// Una unidad autocreada usa la abreviatura también como nombre.
	assert.Equal(t, "pc", unit.Name)
}

// Caso: el servicio ya existe (otra capitalización) → se actualiza precio y
// referencias, y el nombre guardado se conserva tal cual.
func TestImport_ActualizaServicioExistente(t *testing.T) {
	store, uc := newImportFixture()
	existing := mustCreateService(t, store, "Deep Cleaning", "10")

	require.NoError(t, doImport(t, uc, "name,price,category,unit\n  deep cleaning  ,9.50,Home,kg\n"))

	assert.Equal(t, 1, store.CountServices(), "no debe duplicarse el servicio")
	svc, err := store.Services().GetByID(existing.ID)
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "Deep Cleaning", svc.Name, "el nombre original se conserva")
	assert.True(t, svc.Price.Equal(decimal.RequireFromString("9.50")))
	assert.NotEmpty(t, svc.CategoryID)
	assert.NotEmpty(t, svc.UnitID)
}

// Caso: reimportar el mismo archivo no crea nada nuevo.
func TestImport_Idempotente(t *testing.T) {
	store, uc := newImportFixture()
	csvText := "name,price,category,unit\nA,1,Cat,pc\nB,2,Cat,kg\n"

	require.NoError(t, doImport(t, uc, csvText))
	require.NoError(t, doImport(t, uc, csvText))

	assert.Equal(t, 2, store.CountServices())
	assert.Equal(t, 1, store.CountCategories())
	assert.Equal(t, 2, store.CountUnits())
}

// Caso: la misma categoría nueva citada con distinta capitalización y espacios
// en varias filas produce una única fila en el almacén.
func TestImport_CategoriaNuevaSinDuplicados(t *testing.T) {
	store, uc := newImportFixture()

	require.NoError(t, doImport(t, uc,
		"name,price,category,unit\nA,1,DupeCat,\nB,2, dupecat ,\nC,3,DUPECAT,\n"))

	assert.Equal(t, 1, store.CountCategories())
	cat, err := store.Categories().GetByNameFold("dupecat")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "DupeCat", cat.Name, "se conserva la grafía de la primera aparición")
}

// Caso: category y unit vacíos dejan el servicio sin asociaciones.
func TestImport_SinCategoriaNiUnidad(t *testing.T) {
	store, uc := newImportFixture()

	require.NoError(t, doImport(t, uc, "name,price,category,unit\nSolo,4,,\n"))

	svc, err := store.Services().GetByNameFold("Solo")
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Empty(t, svc.CategoryID)
	assert.Empty(t, svc.UnitID)
	assert.Zero(t, store.CountCategories())
	assert.Zero(t, store.CountUnits())
}

// Caso: un error en cualquier fila aborta la importación completa sin dejar
// rastros de las filas anteriores.
func TestImport_AtomicoSinCambiosParciales(t *testing.T) {
	store, uc := newImportFixture()

	err := doImport(t, uc, "name,price,category,unit\nA,1,NewCat,pc\nB,bad,,\n")
	require.Error(t, err)
	assert.Equal(t, "Invalid price", err.Error())

	assert.Zero(t, store.CountServices())
	assert.Zero(t, store.CountCategories())
	assert.Zero(t, store.CountUnits())
}

// Caso: BOM UTF-8 al inicio (exportes de Excel) se tolera.
func TestImport_ToleraBOM(t *testing.T) {
	store, uc := newImportFixture()

	require.NoError(t, doImport(t, uc, "\xef\xbb\xbfname,price,category,unit\nBom,1,,\n"))

	svc, err := store.Services().GetByNameFold("Bom")
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, 1, store.CountServices())
}

// Caso: columnas extra y desordenadas se ignoran; vale cualquier orden.
func TestImport_ColumnasExtraYDesordenadas(t *testing.T) {
	store, uc := newImportFixture()

	require.NoError(t, doImport(t, uc,
		"unit,extra,price,name,category\npc,x,7,Swap,Cat\n"))

	svc, err := store.Services().GetByNameFold("Swap")
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.True(t, svc.Price.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 1, store.CountUnits())
	assert.Equal(t, 1, store.CountCategories())
}
