package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// CategoryWithItemCount categoría con el número de artículos que la referencian.
type CategoryWithItemCount struct {
	entity.Category
	ItemsCount int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay registro.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// ListWithItemCounts filtra por search (subcadena de name o description, sin distinguir
	// mayúsculas; vacío = sin filtro) y ordena por created_at descendente.
	ListWithItemCounts(ctx context.Context, search string, limit, offset int) ([]CategoryWithItemCount, error)
	CountMatching(ctx context.Context, search string) (int, error)
}
