package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold artículos con Quantity por debajo de este valor se consideran con stock bajo.
const LowStockThreshold = 10

// Item representa un artículo del inventario.
type Item struct {
	ID           string
	Name         string // único
	Description  string
	Price        decimal.Decimal
	CategoryID   string // vacío si no tiene categoría
	CategoryName string // solo lectura, resuelto por join
	Quantity     int
	CreatedAt    time.Time
}

// IsLowStock indica si el artículo está por debajo del umbral de stock bajo.
func (i *Item) IsLowStock() bool {
	return i.Quantity < LowStockThreshold
}
