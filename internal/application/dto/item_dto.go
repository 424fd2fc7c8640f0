package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/pkg/pagination"
)

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	Quantity    *int            `json:"quantity" validate:"omitempty,gte=0"` // nil = 0
}

// UpdateItemRequest actualización parcial. CategoryID = "" quita la categoría.
type UpdateItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id"`
	Quantity    *int             `json:"quantity"`
}

// ItemListRequest parámetros de GET /api/items.
type ItemListRequest struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Search   string `query:"search"`
	Category string `query:"category"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Quantity     int             `json:"quantity"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items      []ItemResponse  `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}
