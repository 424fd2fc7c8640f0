package dto

import (
	"time"

	"github.com/jhoicas/ventas-api/pkg/pagination"
)

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCategoryRequest actualización parcial: solo se aplican los campos presentes.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// CategoryListRequest parámetros de GET /api/categories.
type CategoryListRequest struct {
	Page   string `query:"page"`
	Limit  string `query:"limit"`
	Search string `query:"search"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryWithCountResponse categoría con su número de artículos.
type CategoryWithCountResponse struct {
	CategoryResponse
	ItemsCount int `json:"items_count"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Categories []CategoryWithCountResponse `json:"categories"`
	Pagination pagination.Meta             `json:"pagination"`
}
