package entity

// Language idioma disponible en la calculadora. Code es único (ej. "en", "ru").
type Language struct {
	ID   string
	Code string
	Name string
}
