package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// La categoría es opcional: LEFT JOIN y nombre vacío si falta.
const itemSelect = `
	SELECT i.id::text, i.name, i.description, i.price,
	       COALESCE(i.category_id::text, ''), COALESCE(c.name, ''),
	       i.quantity, i.created_at
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price,
		&it.CategoryID, &it.CategoryName, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO items (id, name, description, price, category_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		it.ID, it.Name, it.Description, it.Price, nullableID(it.CategoryID), it.Quantity, it.CreatedAt,
	)
	if err != nil {
		return uniqueErr("insert item", err)
	}
	return nil
}

// GetByID obtiene un artículo con el nombre de su categoría.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, itemSelect+` WHERE i.id = $1`, id)
}

// GetByName obtiene un artículo por nombre exacto.
func (r *ItemRepo) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	return r.getOne(ctx, itemSelect+` WHERE i.name = $1`, name)
}

func (r *ItemRepo) getOne(ctx context.Context, query string, arg any) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Update sobrescribe los campos editables.
func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	_, err := r.q.Exec(ctx, `
		UPDATE items SET name = $2, description = $3, price = $4, category_id = $5, quantity = $6
		WHERE id = $1`,
		it.ID, it.Name, it.Description, it.Price, nullableID(it.CategoryID), it.Quantity,
	)
	if err != nil {
		return uniqueErr("update item", err)
	}
	return nil
}

// Delete elimina el artículo. Las ventas se borran antes desde el caso de uso.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func itemWhere(f repository.ItemListFilter) *whereBuilder {
	b := &whereBuilder{}
	if f.Search != "" {
		b.add(`(i.name ILIKE $%[1]d OR i.description ILIKE $%[1]d)`, likePattern(f.Search))
	}
	if f.CategoryID != "" {
		if validID(f.CategoryID) {
			b.add(`i.category_id = $%d`, f.CategoryID)
		} else {
			b.addRaw(`FALSE`)
		}
	}
	return b
}

// List artículos filtrados, más recientes primero.
func (r *ItemRepo) List(ctx context.Context, f repository.ItemListFilter, limit, offset int) ([]*entity.Item, error) {
	b := itemWhere(f)
	n := b.next()
	query := fmt.Sprintf(`%s %s ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d`, itemSelect, b.sql(), n, n+1)
	return r.list(ctx, query, append(b.args, limit, offset)...)
}

// CountMatching total de artículos que cumplen el filtro.
func (r *ItemRepo) CountMatching(ctx context.Context, f repository.ItemListFilter) (int, error) {
	b := itemWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items i `+b.sql(), b.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// Count total de artículos.
func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// ListIDsByCategory ids de los artículos de la categoría.
func (r *ItemRepo) ListIDsByCategory(ctx context.Context, categoryID string) ([]string, error) {
	ids := make([]string, 0)
	if !validID(categoryID) {
		return ids, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id::text FROM items WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list item ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan item id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteByCategory elimina los artículos de la categoría y devuelve cuántos borró.
func (r *ItemRepo) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	if !validID(categoryID) {
		return 0, nil
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete items by category: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountLowStock artículos con quantity < threshold.
func (r *ItemRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items WHERE quantity < $1`, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// ListLowStock artículos con quantity < threshold, de menor a mayor cantidad.
func (r *ItemRepo) ListLowStock(ctx context.Context, threshold, limit int) ([]*entity.Item, error) {
	return r.list(ctx, itemSelect+` WHERE i.quantity < $1 ORDER BY i.quantity ASC, i.name ASC LIMIT $2`, threshold, limit)
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
