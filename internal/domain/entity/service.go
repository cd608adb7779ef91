package entity

import "github.com/shopspring/decimal"

// Service servicio con precio del listado. Name es la clave natural del upsert
// de importación (comparación sin mayúsculas/minúsculas). CategoryID y UnitID
// son opcionales: cadena vacía significa sin asociación.
type Service struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	CategoryID string
	UnitID     string
}

// ServiceWithRelations servicio junto con los nombres de sus referencias,
// para listados y para la exportación CSV.
type ServiceWithRelations struct {
	Service
	CategoryName     string
	UnitAbbreviation string
}
