package entity

// Currency moneda del catálogo. Code es único (ej. "USD"); Symbol es opcional.
type Currency struct {
	ID     string
	Code   string
	Name   string
	Symbol string
}
