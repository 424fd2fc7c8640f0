package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de ventas y el dashboard.
// Las agrupaciones por fecha usan la zona horaria de la sesión (ver NewPool).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesByItem une ventas con artículo y categoría (opcional) y agrupa por artículo.
func (r *ReportRepo) SalesByItem(ctx context.Context, filter report.SalesFilter) ([]repository.ItemSalesResult, error) {
	results := make([]repository.ItemSalesResult, 0)
	if filter.MatchesNothing() {
		return results, nil
	}
	where, err := salesWhere("s", filter)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
	SELECT
	    i.id::text                  AS item_id,
	    i.name                      AS item_name,
	    COALESCE(c.name, '')        AS category_name,
	    SUM(s.quantity)             AS total_quantity,
	    SUM(s.total_amount)         AS total_revenue,
	    COUNT(*)                    AS sale_count,
	    AVG(i.price)                AS average_price
	FROM sales s
	JOIN items i           ON i.id = s.item_id
	LEFT JOIN categories c ON c.id = i.category_id
	%s
	GROUP BY i.id, i.name, c.name
	ORDER BY total_revenue DESC, i.name ASC`, where.sql())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("report.SalesByItem: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row repository.ItemSalesResult
		if err := rows.Scan(
			&row.ItemID,
			&row.ItemName,
			&row.CategoryName,
			&row.TotalQuantity,
			&row.TotalRevenue,
			&row.SaleCount,
			&row.AveragePrice,
		); err != nil {
			return nil, fmt.Errorf("report.SalesByItem scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// periodKey expresión SQL de la clave del periodo.
func periodKey(g report.Granularity) string {
	switch g {
	case report.GroupByWeek:
		return `to_char(s.sale_date, 'IYYY-"W"IW')`
	case report.GroupByMonth:
		return `to_char(s.sale_date, 'YYYY-MM')`
	default:
		return `to_char(s.sale_date, 'YYYY-MM-DD')`
	}
}

// SalesByPeriod agrupa por día, semana ISO o mes y ordena por la primera venta de cada grupo.
func (r *ReportRepo) SalesByPeriod(ctx context.Context, filter report.SalesFilter, g report.Granularity) ([]repository.PeriodSalesResult, error) {
	results := make([]repository.PeriodSalesResult, 0)
	if filter.MatchesNothing() {
		return results, nil
	}
	where, err := salesWhere("s", filter)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
	SELECT
	    %s                     AS period,
	    SUM(s.quantity)        AS total_quantity,
	    SUM(s.total_amount)    AS total_revenue,
	    COUNT(*)               AS transaction_count,
	    AVG(s.total_amount)    AS average_sale_value,
	    MIN(s.sale_date)       AS first_sale_date
	FROM sales s
	%s
	GROUP BY period
	ORDER BY first_sale_date ASC`, periodKey(g), where.sql())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("report.SalesByPeriod: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row repository.PeriodSalesResult
		if err := rows.Scan(
			&row.Period,
			&row.TotalQuantity,
			&row.TotalRevenue,
			&row.TransactionCount,
			&row.AverageSaleValue,
			&row.FirstSaleDate,
		); err != nil {
			return nil, fmt.Errorf("report.SalesByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByCategory agrupa por categoría; las ventas de artículos sin categoría forman un grupo con id vacío.
func (r *ReportRepo) SalesByCategory(ctx context.Context, filter report.SalesFilter) ([]repository.CategorySalesResult, error) {
	results := make([]repository.CategorySalesResult, 0)
	if filter.MatchesNothing() {
		return results, nil
	}
	where, err := salesWhere("s", filter)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
	SELECT
	    COALESCE(c.id::text, '')       AS category_id,
	    COALESCE(c.name, '')           AS category_name,
	    COALESCE(c.description, '')    AS category_description,
	    SUM(s.quantity)                AS total_quantity,
	    SUM(s.total_amount)            AS total_revenue,
	    COUNT(DISTINCT s.item_id)      AS item_count,
	    COUNT(*)                       AS sale_count,
	    AVG(s.total_amount)            AS average_sale_value
	FROM sales s
	JOIN items i           ON i.id = s.item_id
	LEFT JOIN categories c ON c.id = i.category_id
	%s
	GROUP BY c.id, c.name, c.description
	ORDER BY total_revenue DESC, category_name ASC`, where.sql())

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("report.SalesByCategory: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row repository.CategorySalesResult
		if err := rows.Scan(
			&row.CategoryID,
			&row.CategoryName,
			&row.CategoryDescription,
			&row.TotalQuantity,
			&row.TotalRevenue,
			&row.ItemCount,
			&row.SaleCount,
			&row.AverageSaleValue,
		); err != nil {
			return nil, fmt.Errorf("report.SalesByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesTotals ingresos, unidades y transacciones; ceros cuando no hay ventas.
func (r *ReportRepo) SalesTotals(ctx context.Context, filter report.SalesFilter) (repository.SalesTotals, error) {
	totals := repository.SalesTotals{Revenue: decimal.Zero}
	if filter.MatchesNothing() {
		return totals, nil
	}
	where, err := salesWhere("s", filter)
	if err != nil {
		return totals, err
	}
	query := `
	SELECT COALESCE(SUM(s.total_amount), 0), COALESCE(SUM(s.quantity), 0), COUNT(*)
	FROM sales s ` + where.sql()

	if err := r.pool.QueryRow(ctx, query, where.args...).Scan(&totals.Revenue, &totals.ItemsSold, &totals.Transactions); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("report.SalesTotals: %w", err)
	}
	return totals, nil
}

// MonthlyRevenue ingresos por mes (1-12) de las ventas del filtro.
func (r *ReportRepo) MonthlyRevenue(ctx context.Context, filter report.SalesFilter) ([]repository.MonthRevenueResult, error) {
	results := make([]repository.MonthRevenueResult, 0)
	if filter.MatchesNothing() {
		return results, nil
	}
	where, err := salesWhere("s", filter)
	if err != nil {
		return nil, err
	}
	query := `
	SELECT EXTRACT(MONTH FROM s.sale_date)::int AS month, SUM(s.total_amount) AS revenue
	FROM sales s ` + where.sql() + `
	GROUP BY month
	ORDER BY month`

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("report.MonthlyRevenue: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row repository.MonthRevenueResult
		if err := rows.Scan(&row.Month, &row.Revenue); err != nil {
			return nil, fmt.Errorf("report.MonthlyRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RecentSales últimas ventas; el nombre queda vacío si el artículo ya no existe.
func (r *ReportRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSaleResult, error) {
	const query = `
	SELECT s.id::text, COALESCE(i.name, ''), s.quantity, s.total_amount, s.sale_date
	FROM sales s
	LEFT JOIN items i ON i.id = s.item_id
	ORDER BY s.sale_date DESC, s.created_at DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.RecentSales: %w", err)
	}
	defer rows.Close()
	results := make([]repository.RecentSaleResult, 0, limit)
	for rows.Next() {
		var row repository.RecentSaleResult
		if err := rows.Scan(&row.SaleID, &row.ItemName, &row.Quantity, &row.TotalAmount, &row.SaleDate); err != nil {
			return nil, fmt.Errorf("report.RecentSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopCategoriesByItemCount categorías con más artículos. Las categorías sin artículos cuentan 0
// y completan el ranking si hay menos de limit con artículos.
func (r *ReportRepo) TopCategoriesByItemCount(ctx context.Context, limit int) ([]repository.CategoryRankResult, error) {
	const query = `
	SELECT c.id::text, c.name, COUNT(i.id) AS item_count
	FROM categories c
	LEFT JOIN items i ON i.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY item_count DESC, c.name ASC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopCategoriesByItemCount: %w", err)
	}
	defer rows.Close()
	results := make([]repository.CategoryRankResult, 0, limit)
	for rows.Next() {
		var row repository.CategoryRankResult
		if err := rows.Scan(&row.CategoryID, &row.Name, &row.ItemCount); err != nil {
			return nil, fmt.Errorf("report.TopCategoriesByItemCount scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
