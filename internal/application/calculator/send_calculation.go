package calculator

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Patrón mínimo: algo antes de la @, algo después y un punto más adelante.
// Deliberadamente laxo; el correo de confirmación es el verdadero verificador.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// Claves numéricas obligatorias en cada renglón del cálculo.
var itemKeys = []string{"quantity", "price_per_unit", "item_total_price"}

// SendCalculationUseCase valida el cálculo enviado desde el widget y dispara
// un único intento síncrono de envío por correo, con la cotización en PDF
// adjunta. No persiste nada.
type SendCalculationUseCase struct {
	languages repository.LanguageRepository
	mailer    Mailer
	pdf       QuotePDFGenerator
}

// NewSendCalculationUseCase construye el caso de uso.
func NewSendCalculationUseCase(languages repository.LanguageRepository, mailer Mailer, pdf QuotePDFGenerator) *SendCalculationUseCase {
	return &SendCalculationUseCase{languages: languages, mailer: mailer, pdf: pdf}
}

// Send valida el payload y envía el correo. Los fallos de validación vuelven
// como domain.ValidationError; un fallo del transporte como domain.TransportError.
func (uc *SendCalculationUseCase) Send(ctx context.Context, in dto.SendCalculationRequest) error {
	if in.UserEmail == "" || !emailPattern.MatchString(in.UserEmail) {
		return domain.Validation("Invalid email address.")
	}

	if in.LanguageCode == "" {
		return domain.Validation("Invalid language code.")
	}
	lang, err := uc.languages.GetByCode(in.LanguageCode)
	if err != nil {
		return fmt.Errorf("buscar idioma %q: %w", in.LanguageCode, err)
	}
	if lang == nil {
		return domain.Validation("Invalid language code.")
	}

	if len(in.CalculationItems) == 0 {
		return domain.Validation("calculation_items must be a non-empty list.")
	}
	items := make([]QuoteItem, 0, len(in.CalculationItems))
	for _, item := range in.CalculationItems {
		for _, key := range itemKeys {
			if _, ok := item[key]; !ok {
				return domain.Validation("Invalid item structure.")
			}
		}
		quantity, okQ := numberString(item["quantity"])
		pricePerUnit, okP := numberString(item["price_per_unit"])
		itemTotal, okT := numberString(item["item_total_price"])
		if !okQ || !okP || !okT {
			return domain.Validation("Numeric values required in items.")
		}
		items = append(items, QuoteItem{Quantity: quantity, PricePerUnit: pricePerUnit, ItemTotal: itemTotal})
	}

	// La comprobación de presencia replica la del widget original: un total
	// ausente, vacío o cero se rechaza.
	if isEmptyValue(in.GrandTotalPrice) {
		return domain.Validation("Invalid grand_total_price.")
	}
	grandTotal, ok := numberString(in.GrandTotalPrice)
	if !ok {
		return domain.Validation("Invalid grand_total_price.")
	}

	attachment, err := uc.pdf.GenerateQuotePDF(ctx, items, grandTotal)
	if err != nil {
		return fmt.Errorf("generar cotización PDF: %w", err)
	}

	mail := OutgoingMail{
		To:             in.UserEmail,
		Subject:        "Your price calculation",
		Body:           fmt.Sprintf("Thank you for using our calculator.\n\nYour estimated total is %s.\nThe detailed quote is attached as PDF.\n", grandTotal),
		Attachment:     attachment,
		AttachmentName: "quote.pdf",
	}
	if err := uc.mailer.Send(ctx, mail); err != nil {
		return &domain.TransportError{Err: err}
	}
	return nil
}

// numberString acepta números JSON y cadenas numéricas, y devuelve la
// representación que se imprime en el correo y el PDF.
func numberString(v any) (string, bool) {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case int:
		return strconv.Itoa(n), true
	case string:
		if _, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err != nil {
			return "", false
		}
		return strings.TrimSpace(n), true
	default:
		return "", false
	}
}

// isEmptyValue reporta valores "falsy": ausente, cadena vacía o cero numérico.
func isEmptyValue(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == ""
	case float64:
		return n == 0
	case int:
		return n == 0
	case bool:
		return !n
	default:
		return false
	}
}
