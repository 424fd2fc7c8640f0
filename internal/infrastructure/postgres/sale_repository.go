package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, item_id, quantity, total_amount, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.ItemID, s.Quantity, s.TotalAmount, s.SaleDate, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Count total de ventas.
func (r *SaleRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

// DeleteByItem elimina las ventas de un artículo.
func (r *SaleRepo) DeleteByItem(ctx context.Context, itemID string) (int64, error) {
	if !validID(itemID) {
		return 0, nil
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete sales by item: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByItems elimina las ventas de varios artículos.
func (r *SaleRepo) DeleteByItems(ctx context.Context, itemIDs []string) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE item_id = ANY($1::text[]::uuid[])`, itemIDs)
	if err != nil {
		return 0, fmt.Errorf("delete sales by items: %w", err)
	}
	return tag.RowsAffected(), nil
}
