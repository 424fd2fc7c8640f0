package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

func TestSalesWhere_SinFiltro(t *testing.T) {
	b, err := salesWhere("s", report.NewSalesFilter())
	require.NoError(t, err)
	assert.Equal(t, "", b.sql())
	assert.Empty(t, b.args)
	assert.Equal(t, 1, b.next())
}

func TestSalesWhere_FechasYArticulos(t *testing.T) {
	r, err := report.ParseDateRange("2024-01-01", "2024-01-31", time.UTC)
	require.NoError(t, err)
	f := report.NewSalesFilter().WithDateRange(r).WithItems([]string{"a", "b"})

	b, err := salesWhere("s", f)
	require.NoError(t, err)
	assert.Equal(t, "WHERE s.sale_date >= $1 AND s.sale_date < $2 AND s.item_id = ANY($3::text[]::uuid[])", b.sql())
	require.Len(t, b.args, 3)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), b.args[1])
	assert.Equal(t, []string{"a", "b"}, b.args[2])
	assert.Equal(t, 4, b.next())
}

func TestCategorySearch_ReusaPlaceholder(t *testing.T) {
	b := categorySearch("50%")
	assert.Equal(t, "WHERE (c.name ILIKE $1 OR c.description ILIKE $1)", b.sql())
	assert.Equal(t, []any{`%50\%%`}, b.args)
}

func TestItemWhere_CategoriaInvalidaNoCoincide(t *testing.T) {
	b := itemWhere(filterOf("", "no-es-uuid"))
	assert.Equal(t, "WHERE FALSE", b.sql())
	assert.Empty(t, b.args)
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("7b0c7d5e-6f0a-4a53-9d0e-2a3c1b9f8e11"))
	assert.False(t, validID("123"))
	assert.False(t, validID(""))
}

func TestPeriodKey(t *testing.T) {
	assert.Contains(t, periodKey(report.GroupByDay), "YYYY-MM-DD")
	assert.Contains(t, periodKey(report.GroupByWeek), "IYYY")
	assert.Contains(t, periodKey(report.GroupByMonth), "'YYYY-MM'")
}

func filterOf(search, category string) repository.ItemListFilter {
	return repository.ItemListFilter{Search: search, CategoryID: category}
}
