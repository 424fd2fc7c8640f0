package usecase

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner; los borrados en cascada lo usan para no dejar huérfanos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
