package entity

// UnitOfMeasurement unidad de medida de un servicio. Name y Abbreviation son únicos.
// La reconciliación CSV compara Abbreviation sin mayúsculas/minúsculas y sin
// espacios alrededor.
type UnitOfMeasurement struct {
	ID           string
	Name         string
	Abbreviation string
}
