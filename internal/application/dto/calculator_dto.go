package dto

// CalculatorDataResponse instantánea del catálogo para el widget.
type CalculatorDataResponse struct {
	Settings   map[string]string      `json:"settings"`
	Languages  []LanguageOption       `json:"languages"`
	Currencies []CurrencyOption       `json:"currencies"`
	Units      []UnitOption           `json:"units_of_measurement"`
	Categories []CategoryWithServices `json:"categories"`
}

// LanguageOption idioma para el selector del widget; id lleva el código.
type LanguageOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CurrencyOption moneda para el selector del widget; id lleva el código.
type CurrencyOption struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// UnitOption unidad de medida del catálogo.
type UnitOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// CategoryWithServices categoría con sus servicios anidados.
type CategoryWithServices struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Services []ServiceOption `json:"services"`
}

// ServiceOption servicio dentro de una categoría. Price va formateado con dos
// decimales; UnitID es null si el servicio no tiene unidad.
type ServiceOption struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Price  string  `json:"price"`
	UnitID *string `json:"unit_id"`
}

// SendCalculationRequest payload del envío de cálculo por correo. Los campos
// numéricos llegan como número JSON o como cadena numérica, por eso son `any`
// y se validan con comprobaciones explícitas en el caso de uso.
type SendCalculationRequest struct {
	UserEmail        string           `json:"user_email"`
	LanguageCode     string           `json:"language_code"`
	CalculationItems []map[string]any `json:"calculation_items"`
	GrandTotalPrice  any              `json:"grand_total_price"`
}
