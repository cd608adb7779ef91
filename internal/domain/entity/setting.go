package entity

// Claves conocidas de Setting.
const (
	SettingDefaultLanguageID = "default_language_id"
	SettingDefaultCurrencyID = "default_currency_id"
)

// Setting par clave/valor de configuración del catálogo.
type Setting struct {
	Key   string
	Value string
}
