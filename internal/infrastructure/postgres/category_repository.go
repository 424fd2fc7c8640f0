package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `c.id::text, c.name, c.description, c.created_at`

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO categories (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Description, c.CreatedAt,
	)
	if err != nil {
		return uniqueErr("insert category", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE c.id = $1`, id)
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE c.name = $1`, name)
}

func (r *CategoryRepo) getOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza nombre y descripción.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `UPDATE categories SET name = $2, description = $3 WHERE id = $1`,
		c.ID, c.Name, c.Description)
	if err != nil {
		return uniqueErr("update category", err)
	}
	return nil
}

// Delete elimina la categoría. No toca artículos: la cascada la hace el caso de uso.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Count total de categorías.
func (r *CategoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func categorySearch(search string) *whereBuilder {
	b := &whereBuilder{}
	if search != "" {
		b.add(`(c.name ILIKE $%[1]d OR c.description ILIKE $%[1]d)`, likePattern(search))
	}
	return b
}

// ListWithItemCounts lista categorías con el número de artículos que las referencian.
func (r *CategoryRepo) ListWithItemCounts(ctx context.Context, search string, limit, offset int) ([]repository.CategoryWithItemCount, error) {
	b := categorySearch(search)
	n := b.next()
	query := fmt.Sprintf(`
		SELECT `+categoryColumns+`, COUNT(i.id) AS items_count
		FROM categories c
		LEFT JOIN items i ON i.category_id = c.id
		%s
		GROUP BY c.id
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d`, b.sql(), n, n+1)

	rows, err := r.q.Query(ctx, query, append(b.args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := make([]repository.CategoryWithItemCount, 0)
	for rows.Next() {
		var row repository.CategoryWithItemCount
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.CreatedAt, &row.ItemsCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountMatching total de categorías que cumplen search (para la paginación).
func (r *CategoryRepo) CountMatching(ctx context.Context, search string) (int, error) {
	b := categorySearch(search)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories c `+b.sql(), b.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}
