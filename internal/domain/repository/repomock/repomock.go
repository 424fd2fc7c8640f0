// Package repomock implementa los puertos de repository con testify/mock para los tests de casos de uso.
package repomock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/report"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// CategoryRepository mock de repository.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *CategoryRepository) ListWithItemCounts(ctx context.Context, search string, limit, offset int) ([]repository.CategoryWithItemCount, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryWithItemCount), args.Error(1)
}

func (m *CategoryRepository) CountMatching(ctx context.Context, search string) (int, error) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Error(1)
}

// ItemRepository mock de repository.ItemRepository.
type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) Create(ctx context.Context, it *entity.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *ItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *ItemRepository) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *ItemRepository) Update(ctx context.Context, it *entity.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *ItemRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ItemRepository) List(ctx context.Context, f repository.ItemListFilter, limit, offset int) ([]*entity.Item, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *ItemRepository) CountMatching(ctx context.Context, f repository.ItemListFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *ItemRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ItemRepository) ListIDsByCategory(ctx context.Context, categoryID string) ([]string, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *ItemRepository) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ItemRepository) CountLowStock(ctx context.Context, threshold int) (int, error) {
	args := m.Called(ctx, threshold)
	return args.Int(0), args.Error(1)
}

func (m *ItemRepository) ListLowStock(ctx context.Context, threshold, limit int) ([]*entity.Item, error) {
	args := m.Called(ctx, threshold, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Item), args.Error(1)
}

// SaleRepository mock de repository.SaleRepository.
type SaleRepository struct {
	mock.Mock
}

func (m *SaleRepository) Create(ctx context.Context, s *entity.Sale) error {
	return m.Called(ctx, s).Error(0)
}

func (m *SaleRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *SaleRepository) DeleteByItem(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SaleRepository) DeleteByItems(ctx context.Context, itemIDs []string) (int64, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).(int64), args.Error(1)
}

// UserRepository mock de repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ReportRepository mock de repository.ReportRepository.
type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) SalesByItem(ctx context.Context, f report.SalesFilter) ([]repository.ItemSalesResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ItemSalesResult), args.Error(1)
}

func (m *ReportRepository) SalesByPeriod(ctx context.Context, f report.SalesFilter, g report.Granularity) ([]repository.PeriodSalesResult, error) {
	args := m.Called(ctx, f, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PeriodSalesResult), args.Error(1)
}

func (m *ReportRepository) SalesByCategory(ctx context.Context, f report.SalesFilter) ([]repository.CategorySalesResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategorySalesResult), args.Error(1)
}

func (m *ReportRepository) SalesTotals(ctx context.Context, f report.SalesFilter) (repository.SalesTotals, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(repository.SalesTotals), args.Error(1)
}

func (m *ReportRepository) MonthlyRevenue(ctx context.Context, f report.SalesFilter) ([]repository.MonthRevenueResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthRevenueResult), args.Error(1)
}

func (m *ReportRepository) RecentSales(ctx context.Context, limit int) ([]repository.RecentSaleResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RecentSaleResult), args.Error(1)
}

func (m *ReportRepository) TopCategoriesByItemCount(ctx context.Context, limit int) ([]repository.CategoryRankResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryRankResult), args.Error(1)
}

// TxRunner ejecuta fn directamente con los mocks indicados, sin transacción real.
type TxRunner struct {
	Categories *CategoryRepository
	Items      *ItemRepository
	Sales      *SaleRepository
	Calls      int
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.Calls++
	return fn(r.Categories, r.Items, r.Sales)
}

var (
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.ItemRepository     = (*ItemRepository)(nil)
	_ repository.SaleRepository     = (*SaleRepository)(nil)
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.ReportRepository   = (*ReportRepository)(nil)
)
