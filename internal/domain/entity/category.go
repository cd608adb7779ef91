package entity

// Category categoría de servicios. Name es único; la reconciliación CSV lo
// compara sin distinguir mayúsculas/minúsculas.
type Category struct {
	ID   string
	Name string
}
