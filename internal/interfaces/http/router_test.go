package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/calculator"
	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// captureMailer guarda los correos enviados, o falla si failWith está puesto.
type captureMailer struct {
	sent     []calculator.OutgoingMail
	failWith error
}

func (m *captureMailer) Send(_ context.Context, mail calculator.OutgoingMail) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, mail)
	return nil
}

type stubPDF struct{}

func (stubPDF) GenerateQuotePDF(context.Context, []calculator.QuoteItem, string) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// testServer aplicación Fiber completa sobre el almacén en memoria.
type testServer struct {
	app    *fiber.App
	store  *memory.Store
	mailer *captureMailer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	mailer := &captureMailer{}

	admin := &entity.User{ID: uuid.New().String(), Username: testUsername}
	require.NoError(t, admin.SetPassword("secret123"))
	require.NoError(t, store.Users().Create(admin))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LanguageUC:      usecase.NewLanguageUseCase(store.Languages()),
		CurrencyUC:      usecase.NewCurrencyUseCase(store.Currencies()),
		UnitUC:          usecase.NewUnitUseCase(store.Units()),
		CategoryUC:      usecase.NewCategoryUseCase(store.Categories()),
		ServiceUC:       usecase.NewServiceUseCase(store.Services()),
		SettingsUC:      usecase.NewSettingsUseCase(store.Settings()),
		ImportServices:  catalog.NewImportServicesUseCase(store.TxRunner()),
		ExportServices:  catalog.NewExportServicesUseCase(store.Services()),
		CalculatorData: calculator.NewCalculatorDataUseCase(
			store.Languages(), store.Currencies(), store.Units(),
			store.Categories(), store.Services(), store.Settings(),
		),
		SendCalculation: calculator.NewSendCalculationUseCase(store.Languages(), mailer, stubPDF{}),
		AuthUC: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return &testServer{app: app, store: store, mailer: mailer}
}

// login obtiene un token vía POST /api/auth/login.
func (s *testServer) login(t *testing.T) string {
	t.Helper()
	resp := s.doJSON(t, http.MethodPost, "/api/auth/login", "",
		`{"username":"admin","password":"secret123"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe ser exitoso")

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func (s *testServer) doJSON(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// uploadCSV lanza un POST multipart a /api/services/import.
func (s *testServer) uploadCSV(t *testing.T, token, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/services/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeStatus(t *testing.T, resp *http.Response) (status, message string) {
	t.Helper()
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Status, body.Message
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y protección de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)
	assert.NotEmpty(t, token)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	s := newTestServer(t)
	resp := s.doJSON(t, http.MethodPost, "/api/auth/login", "",
		`{"username":"admin","password":"wrong"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutasAdministrativas_RequierenToken(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/services", "/api/categories", "/api/settings"} {
		resp := s.doJSON(t, http.MethodGet, path, "", "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestAPIPublicaDelWidget_NoRequiereToken(t *testing.T) {
	s := newTestServer(t)
	resp := s.doJSON(t, http.MethodGet, "/api/v1/calculator-data", "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación y exportación CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestImportEndpoint_RedirigeAlListado(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp := s.uploadCSV(t, token, "services.csv", "name,price,category,unit\nNew,2,Cleaning,pc\n")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/api/services", resp.Header.Get("Location"))
	status, message := decodeStatus(t, resp)
	assert.Equal(t, "success", status)
	assert.Equal(t, "Services imported", message)

	assert.Equal(t, 1, s.store.CountServices())
	assert.Equal(t, 1, s.store.CountCategories())
	assert.Equal(t, 1, s.store.CountUnits())
}

func TestImportEndpoint_SinArchivo(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp := s.uploadCSV(t, token, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No file provided")
}

func TestImportEndpoint_ErrorDeValidacionConMensaje(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp := s.uploadCSV(t, token, "services.csv", "name,price\nX,1\n")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Missing columns")
	assert.Zero(t, s.store.CountServices())
}

func TestExportEndpoint_DescargaCSV(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp := s.uploadCSV(t, token, "seed.csv", "name,price,category,unit\nA,1.25,Cat,pc\n")
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp = s.doJSON(t, http.MethodGet, "/api/services/export", token, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Equal(t, "attachment; filename=services.csv", resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "name,price,category,unit\nA,1.25,Cat,pc\n", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// API pública del widget
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculatorData_EstructuraDelSnapshot(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.store.Languages().Create(&entity.Language{
		ID: uuid.New().String(), Code: "en", Name: "English",
	}))

	resp := s.doJSON(t, http.MethodGet, "/api/v1/calculator-data", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	for _, key := range []string{"settings", "languages", "currencies", "units_of_measurement", "categories"} {
		assert.Contains(t, body, key)
	}

	var languages []map[string]string
	require.NoError(t, json.Unmarshal(body["languages"], &languages))
	require.Len(t, languages, 1)
	assert.Equal(t, "en", languages[0]["id"], "el id del idioma lleva el código")
}

func TestSendCalculationEndpoint_EmailInvalido(t *testing.T) {
	s := newTestServer(t)

	resp := s.doJSON(t, http.MethodPost, "/api/v1/send-calculation", "",
		`{"user_email":"bad","language_code":"en","calculation_items":[{"quantity":1,"price_per_unit":2,"item_total_price":2}],"grand_total_price":2}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	status, message := decodeStatus(t, resp)
	assert.Equal(t, "error", status)
	assert.Equal(t, "Invalid email address.", message)
	assert.Empty(t, s.mailer.sent)
}

func TestSendCalculationEndpoint_Exito(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.store.Languages().Create(&entity.Language{
		ID: uuid.New().String(), Code: "en", Name: "English",
	}))

	resp := s.doJSON(t, http.MethodPost, "/api/v1/send-calculation", "",
		`{"user_email":"user@example.com","language_code":"en","calculation_items":[{"quantity":2,"price_per_unit":5,"item_total_price":10}],"grand_total_price":10}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	status, message := decodeStatus(t, resp)
	assert.Equal(t, "success", status)
	assert.Equal(t, "Calculation successfully sent to your email.", message)

	require.Len(t, s.mailer.sent, 1)
	assert.Equal(t, "user@example.com", s.mailer.sent[0].To)
	assert.Equal(t, "quote.pdf", s.mailer.sent[0].AttachmentName)
}

func TestSendCalculationEndpoint_FalloSMTP(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.store.Languages().Create(&entity.Language{
		ID: uuid.New().String(), Code: "en", Name: "English",
	}))
	s.mailer.failWith = errors.New("smtp caído")

	resp := s.doJSON(t, http.MethodPost, "/api/v1/send-calculation", "",
		`{"user_email":"user@example.com","language_code":"en","calculation_items":[{"quantity":1,"price_per_unit":1,"item_total_price":1}],"grand_total_price":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	status, message := decodeStatus(t, resp)
	assert.Equal(t, "error", status)
	assert.Equal(t, "Failed to send email.", message)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD administrativo
// ──────────────────────────────────────────────────────────────────────────────

func TestServiciosCRUD_Basico(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp := s.doJSON(t, http.MethodPost, "/api/services", token,
		`{"name":"Cleaning","price":"9.99"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotEmpty(t, created.ID)

	// Crear con el mismo nombre → conflicto.
	resp = s.doJSON(t, http.MethodPost, "/api/services", token,
		`{"name":"Cleaning","price":"1"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.doJSON(t, http.MethodPut, "/api/services/"+created.ID, token,
		`{"price":"12.50"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doJSON(t, http.MethodPut, "/api/services/"+uuid.New().String(), token,
		`{"price":"1"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.doJSON(t, http.MethodDelete, "/api/services/"+created.ID, token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Zero(t, s.store.CountServices())
}

func TestDeleteSelected_Categorias(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		resp := s.doJSON(t, http.MethodPost, "/api/categories", token, `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()
		ids = append(ids, created.ID)
	}

	payload, err := json.Marshal(map[string][]string{"ids": ids[:2]})
	require.NoError(t, err)
	resp := s.doJSON(t, http.MethodPost, "/api/categories/delete-selected", token, string(payload))
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1, s.store.CountCategories())
}

func TestSettings_GuardarYLeer(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp := s.doJSON(t, http.MethodPut, "/api/settings", token,
		`{"default_language_id":"en","default_currency_id":"EUR"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2 := s.doJSON(t, http.MethodGet, "/api/settings", token, "")
	defer resp2.Body.Close()
	var body struct {
		DefaultLanguageID string `json:"default_language_id"`
		DefaultCurrencyID string `json:"default_currency_id"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	assert.Equal(t, "en", body.DefaultLanguageID)
	assert.Equal(t, "EUR", body.DefaultCurrencyID)
}
