package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ItemListFilter filtros opcionales del listado de artículos.
type ItemListFilter struct {
	Search     string // subcadena de name o description, sin distinguir mayúsculas
	CategoryID string
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay registro.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ItemListFilter, limit, offset int) ([]*entity.Item, error)
	CountMatching(ctx context.Context, filter ItemListFilter) (int, error)
	Count(ctx context.Context) (int, error)

	// ListIDsByCategory ids de los artículos de la categoría (filtro de reportes y cascada).
	ListIDsByCategory(ctx context.Context, categoryID string) ([]string, error)
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)

	// CountLowStock cuenta artículos con quantity < threshold.
	CountLowStock(ctx context.Context, threshold int) (int, error)
	// ListLowStock artículos con quantity < threshold, de menor a mayor cantidad.
	ListLowStock(ctx context.Context, threshold, limit int) ([]*entity.Item, error)
}
