package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Sale una venta de un artículo. No se actualiza; solo se borra en cascada.
type Sale struct {
	ID          string
	ItemID      string
	Quantity    int
	TotalAmount decimal.Decimal
	SaleDate    time.Time
	CreatedAt   time.Time
}

// Validate reglas mínimas de una venta: artículo, cantidad >= 1 e importe >= 0.
func (s *Sale) Validate() error {
	if s.ItemID == "" {
		return errors.New("la venta requiere un artículo")
	}
	if s.Quantity < 1 {
		return errors.New("la cantidad vendida debe ser al menos 1")
	}
	if s.TotalAmount.IsNegative() {
		return errors.New("el importe total no puede ser negativo")
	}
	return nil
}
