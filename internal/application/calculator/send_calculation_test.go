package calculator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/calculator"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeMailer captura el último correo enviado, o falla si failWith está puesto.
type fakeMailer struct {
	sent     []calculator.OutgoingMail
	failWith error
}

func (m *fakeMailer) Send(_ context.Context, mail calculator.OutgoingMail) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, mail)
	return nil
}

// fakePDF devuelve bytes fijos y registra los argumentos recibidos.
type fakePDF struct {
	items      []calculator.QuoteItem
	grandTotal string
}

func (p *fakePDF) GenerateQuotePDF(_ context.Context, items []calculator.QuoteItem, grandTotal string) ([]byte, error) {
	p.items = items
	p.grandTotal = grandTotal
	return []byte("%PDF-fake"), nil
}

func newSendFixture(t *testing.T) (*fakeMailer, *fakePDF, *calculator.SendCalculationUseCase) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Languages().Create(&entity.Language{
		ID: uuid.New().String(), Code: "en", Name: "English",
	}))
	mailer := &fakeMailer{}
	pdf := &fakePDF{}
	return mailer, pdf, calculator.NewSendCalculationUseCase(store.Languages(), mailer, pdf)
}

func validRequest() dto.SendCalculationRequest {
	return dto.SendCalculationRequest{
		UserEmail:    "user@example.com",
		LanguageCode: "en",
		CalculationItems: []map[string]any{
			{"quantity": float64(2), "price_per_unit": float64(5), "item_total_price": float64(10)},
		},
		GrandTotalPrice: float64(10),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación del payload
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_ValidacionDelPayload(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.SendCalculationRequest)
		message string
	}{
		{
			name:    "correo vacío",
			mutate:  func(r *dto.SendCalculationRequest) { r.UserEmail = "" },
			message: "Invalid email address.",
		},
		{
			name:    "correo sin arroba",
			mutate:  func(r *dto.SendCalculationRequest) { r.UserEmail = "not-an-email" },
			message: "Invalid email address.",
		},
		{
			name:    "correo sin punto tras el dominio",
			mutate:  func(r *dto.SendCalculationRequest) { r.UserEmail = "user@example" },
			message: "Invalid email address.",
		},
		{
			name:    "idioma vacío",
			mutate:  func(r *dto.SendCalculationRequest) { r.LanguageCode = "" },
			message: "Invalid language code.",
		},
		{
			name:    "idioma inexistente",
			mutate:  func(r *dto.SendCalculationRequest) { r.LanguageCode = "xx" },
			message: "Invalid language code.",
		},
		{
			name:    "sin renglones",
			mutate:  func(r *dto.SendCalculationRequest) { r.CalculationItems = nil },
			message: "calculation_items must be a non-empty list.",
		},
		{
			name: "renglón sin clave obligatoria",
			mutate: func(r *dto.SendCalculationRequest) {
				r.CalculationItems = []map[string]any{{"quantity": float64(1), "price_per_unit": float64(2)}}
			},
			message: "Invalid item structure.",
		},
		{
			name: "renglón con valor no numérico",
			mutate: func(r *dto.SendCalculationRequest) {
				r.CalculationItems = []map[string]any{
					{"quantity": "two", "price_per_unit": float64(2), "item_total_price": float64(4)},
				}
			},
			message: "Numeric values required in items.",
		},
		{
			name:    "total ausente",
			mutate:  func(r *dto.SendCalculationRequest) { r.GrandTotalPrice = nil },
			message: "Invalid grand_total_price.",
		},
		{
			name:    "total cero numérico",
			mutate:  func(r *dto.SendCalculationRequest) { r.GrandTotalPrice = float64(0) },
			message: "Invalid grand_total_price.",
		},
		{
			name:    "total no numérico",
			mutate:  func(r *dto.SendCalculationRequest) { r.GrandTotalPrice = "mucho" },
			message: "Invalid grand_total_price.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer, _, uc := newSendFixture(t)
			req := validRequest()
			tc.mutate(&req)

			err := uc.Send(context.Background(), req)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err), "debe ser error de validación")
			assert.Equal(t, tc.message, err.Error())
			assert.Empty(t, mailer.sent, "un payload inválido no debe enviar correo")
		})
	}
}

// Caso heredado del widget original: el total "0" como cadena pasa la
// comprobación de presencia y se acepta.
func TestSend_TotalCeroComoCadenaSeAcepta(t *testing.T) {
	mailer, _, uc := newSendFixture(t)
	req := validRequest()
	req.GrandTotalPrice = "0"

	require.NoError(t, uc.Send(context.Background(), req))
	assert.Len(t, mailer.sent, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envío
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_CorreoConCotizacionAdjunta(t *testing.T) {
	mailer, pdf, uc := newSendFixture(t)
	req := validRequest()
	req.CalculationItems = []map[string]any{
		{"quantity": "2", "price_per_unit": "5.50", "item_total_price": "11"},
	}
	req.GrandTotalPrice = "11"

	require.NoError(t, uc.Send(context.Background(), req))

	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "user@example.com", mail.To)
	assert.Equal(t, "Your price calculation", mail.Subject)
	assert.Contains(t, mail.Body, "11")
	assert.Equal(t, "quote.pdf", mail.AttachmentName)
	assert.Equal(t, []byte("%PDF-fake"), mail.Attachment)

	// El PDF recibe los renglones ya normalizados y el total.
	require.Len(t, pdf.items, 1)
	assert.Equal(t, "2", pdf.items[0].Quantity)
	assert.Equal(t, "5.50", pdf.items[0].PricePerUnit)
	assert.Equal(t, "11", pdf.items[0].ItemTotal)
	assert.Equal(t, "11", pdf.grandTotal)
}

// Caso: un fallo del SMTP vuelve como error de transporte, no de validación.
func TestSend_FalloDeTransporte(t *testing.T) {
	mailer, _, uc := newSendFixture(t)
	mailer.failWith = errors.New("smtp: connection refused")

	err := uc.Send(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
	assert.False(t, domain.IsValidation(err))
}
