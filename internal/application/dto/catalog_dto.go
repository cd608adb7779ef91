package dto

import "github.com/shopspring/decimal"

// ── Idiomas ───────────────────────────────────────────────────────────────────

// CreateLanguageRequest entrada para crear un idioma.
type CreateLanguageRequest struct {
	Code string `json:"code" validate:"required,min=1,max=8"`
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// UpdateLanguageRequest entrada para actualizar un idioma.
type UpdateLanguageRequest struct {
	Code *string `json:"code" validate:"omitempty,min=1,max=8"`
	Name *string `json:"name" validate:"omitempty,min=1,max=64"`
}

// LanguageResponse salida de un idioma.
type LanguageResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// ── Monedas ───────────────────────────────────────────────────────────────────

// CreateCurrencyRequest entrada para crear una moneda.
type CreateCurrencyRequest struct {
	Code   string `json:"code" validate:"required,min=1,max=8"`
	Name   string `json:"name" validate:"required,min=1,max=64"`
	Symbol string `json:"symbol" validate:"max=8"`
}

// UpdateCurrencyRequest entrada para actualizar una moneda.
type UpdateCurrencyRequest struct {
	Code   *string `json:"code" validate:"omitempty,min=1,max=8"`
	Name   *string `json:"name" validate:"omitempty,min=1,max=64"`
	Symbol *string `json:"symbol" validate:"omitempty,max=8"`
}

// CurrencyResponse salida de una moneda.
type CurrencyResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// ── Unidades ──────────────────────────────────────────────────────────────────

// CreateUnitRequest entrada para crear una unidad de medida.
type CreateUnitRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=64"`
	Abbreviation string `json:"abbreviation" validate:"required,min=1,max=16"`
}

// UpdateUnitRequest entrada para actualizar una unidad de medida.
type UpdateUnitRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=64"`
	Abbreviation *string `json:"abbreviation" validate:"omitempty,min=1,max=16"`
}

// UnitResponse salida de una unidad de medida.
type UnitResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=64"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ── Servicios ─────────────────────────────────────────────────────────────────

// CreateServiceRequest entrada para crear un servicio. CategoryID y UnitID
// vacíos significan sin asociación.
type CreateServiceRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=128"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id"`
	UnitID     string          `json:"unit_id"`
}

// UpdateServiceRequest entrada para actualizar un servicio.
type UpdateServiceRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=128"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *string          `json:"category_id"`
	UnitID     *string          `json:"unit_id"`
}

// ServiceResponse salida de un servicio con los nombres de sus referencias.
type ServiceResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	UnitID       string          `json:"unit_id,omitempty"`
	UnitAbbrev   string          `json:"unit_abbreviation,omitempty"`
}

// DeleteSelectedRequest IDs a borrar en lote.
type DeleteSelectedRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// ── Settings ──────────────────────────────────────────────────────────────────

// UpdateSettingsRequest valores por defecto del widget.
type UpdateSettingsRequest struct {
	DefaultLanguageID string `json:"default_language_id" validate:"required"`
	DefaultCurrencyID string `json:"default_currency_id" validate:"required"`
}

// SettingsResponse valores por defecto actuales; cadena vacía si no están
// configurados todavía.
type SettingsResponse struct {
	DefaultLanguageID string `json:"default_language_id"`
	DefaultCurrencyID string `json:"default_currency_id"`
}
