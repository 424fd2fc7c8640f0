package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	Count(ctx context.Context) (int, error)
	DeleteByItem(ctx context.Context, itemID string) (int64, error)
	DeleteByItems(ctx context.Context, itemIDs []string) (int64, error)
}
