package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/config"
)

// newIntegrationPool conecta a DATABASE_URL, aplica migraciones y vacía las tablas.
// Sin DATABASE_URL el test se omite.
func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido; se omiten los tests contra PostgreSQL")
	}
	require.NoError(t, RunMigrations(dsn))

	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn}, "UTC")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE sales, items, categories`)
	require.NoError(t, err)
	return pool
}

func seedCategory(t *testing.T, pool *pgxpool.Pool, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	require.NoError(t, NewCategoryRepository(pool).Create(context.Background(), c))
	return c
}

func seedItem(t *testing.T, pool *pgxpool.Pool, name, price, categoryID string) *entity.Item {
	t.Helper()
	it := &entity.Item{
		ID:         uuid.NewString(),
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
		Quantity:   20,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, NewItemRepository(pool).Create(context.Background(), it))
	return it
}

func seedSale(t *testing.T, pool *pgxpool.Pool, itemID string, qty int, total string, at time.Time) {
	t.Helper()
	s := &entity.Sale{
		ID:          uuid.NewString(),
		ItemID:      itemID,
		Quantity:    qty,
		TotalAmount: decimal.RequireFromString(total),
		SaleDate:    at,
		CreatedAt:   at,
	}
	require.NoError(t, NewSaleRepository(pool).Create(context.Background(), s))
}

func TestReportRepo_SalesByPeriodPorMes(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()

	cat := seedCategory(t, pool, "Bebidas")
	it := seedItem(t, pool, "Café", "50.00", cat.ID)
	seedSale(t, pool, it.ID, 2, "100.00", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	seedSale(t, pool, it.ID, 1, "50.00", time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC))

	rows, err := NewReportRepository(pool).SalesByPeriod(ctx, report.NewSalesFilter(), report.GroupByMonth)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01", rows[0].Period)
	assert.Equal(t, int64(2), rows[0].TotalQuantity)
	assert.True(t, decimal.NewFromInt(100).Equal(rows[0].TotalRevenue), rows[0].TotalRevenue.String())
	assert.Equal(t, 1, rows[0].TransactionCount)

	assert.Equal(t, "2024-02", rows[1].Period)
	assert.True(t, decimal.NewFromInt(50).Equal(rows[1].TotalRevenue), rows[1].TotalRevenue.String())
}

func TestReportRepo_SalesByItem(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()

	cat := seedCategory(t, pool, "Snacks")
	papas := seedItem(t, pool, "Papas", "10.00", cat.ID)
	mani := seedItem(t, pool, "Maní", "5.00", "")
	seedItem(t, pool, "Galletas", "8.00", cat.ID) // sin ventas
	day := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	seedSale(t, pool, papas.ID, 3, "30.00", day)
	seedSale(t, pool, papas.ID, 1, "10.00", day.Add(time.Hour))
	seedSale(t, pool, mani.ID, 2, "10.00", day)

	repo := NewReportRepository(pool)

	t.Run("artículos sin ventas no aparecen", func(t *testing.T) {
		rows, err := repo.SalesByItem(ctx, report.NewSalesFilter())
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, papas.ID, rows[0].ItemID)
		assert.Equal(t, "Snacks", rows[0].CategoryName)
		assert.Equal(t, int64(4), rows[0].TotalQuantity)
		assert.Equal(t, 2, rows[0].SaleCount)
		assert.True(t, decimal.NewFromInt(40).Equal(rows[0].TotalRevenue), rows[0].TotalRevenue.String())

		assert.Equal(t, mani.ID, rows[1].ItemID)
		assert.Equal(t, "", rows[1].CategoryName)
		for _, r := range rows {
			assert.NotEqual(t, "Galletas", r.ItemName)
		}
	})

	t.Run("filtro por artículos", func(t *testing.T) {
		rows, err := repo.SalesByItem(ctx, report.NewSalesFilter().WithItems([]string{mani.ID}))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, mani.ID, rows[0].ItemID)
		assert.Equal(t, int64(2), rows[0].TotalQuantity)
	})

	t.Run("filtro sin artículos no devuelve filas", func(t *testing.T) {
		rows, err := repo.SalesByItem(ctx, report.NewSalesFilter().WithItems([]string{}))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestReportRepo_SalesTotalsSinVentas(t *testing.T) {
	pool := newIntegrationPool(t)

	totals, err := NewReportRepository(pool).SalesTotals(context.Background(), report.NewSalesFilter())
	require.NoError(t, err)
	assert.True(t, totals.Revenue.IsZero(), totals.Revenue.String())
	assert.Equal(t, int64(0), totals.ItemsSold)
	assert.Equal(t, 0, totals.Transactions)
}

func TestReportRepo_TopCategoriesIncluyeCategoriasVacias(t *testing.T) {
	pool := newIntegrationPool(t)

	llena := seedCategory(t, pool, "Lácteos")
	vacia := seedCategory(t, pool, "Congelados")
	seedItem(t, pool, "Leche", "4.00", llena.ID)
	seedItem(t, pool, "Yogur", "3.00", llena.ID)

	rows, err := NewReportRepository(pool).TopCategoriesByItemCount(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, repository.CategoryRankResult{CategoryID: llena.ID, Name: "Lácteos", ItemCount: 2}, rows[0])
	assert.Equal(t, repository.CategoryRankResult{CategoryID: vacia.ID, Name: "Congelados", ItemCount: 0}, rows[1])
}

func TestTxRunner_BorradoEnCascadaDeCategoria(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()

	cat := seedCategory(t, pool, "Limpieza")
	jabon := seedItem(t, pool, "Jabón", "2.50", cat.ID)
	cloro := seedItem(t, pool, "Cloro", "3.00", cat.ID)
	now := time.Now()
	seedSale(t, pool, jabon.ID, 1, "2.50", now)
	seedSale(t, pool, cloro.ID, 2, "6.00", now)

	err := NewTxRunner(pool).Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		saleRepo repository.SaleRepository,
	) error {
		ids, err := itemRepo.ListIDsByCategory(ctx, cat.ID)
		if err != nil {
			return err
		}
		if _, err := saleRepo.DeleteByItems(ctx, ids); err != nil {
			return err
		}
		if _, err := itemRepo.DeleteByCategory(ctx, cat.ID); err != nil {
			return err
		}
		return categoryRepo.Delete(ctx, cat.ID)
	})
	require.NoError(t, err)

	items, err := NewItemRepository(pool).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, items)

	sales, err := NewSaleRepository(pool).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sales)

	got, err := NewCategoryRepository(pool).GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTxRunner_ErrorRevierteCambios(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()

	cat := seedCategory(t, pool, "Ferretería")
	it := seedItem(t, pool, "Martillo", "15.00", cat.ID)
	seedSale(t, pool, it.ID, 1, "15.00", time.Now())

	errFallo := assert.AnError
	err := NewTxRunner(pool).Run(ctx, func(
		_ repository.CategoryRepository,
		_ repository.ItemRepository,
		saleRepo repository.SaleRepository,
	) error {
		if _, err := saleRepo.DeleteByItem(ctx, it.ID); err != nil {
			return err
		}
		return errFallo
	})
	require.ErrorIs(t, err, errFallo)

	sales, err := NewSaleRepository(pool).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sales)
}
