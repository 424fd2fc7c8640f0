package entity

import (
	"strings"
	"time"
)

// Category agrupa artículos del inventario. Name es único.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// NormalizeName recorta espacios; se aplica a nombres de categorías y artículos antes de persistir o buscar.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
