package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/internal/domain/repository/repomock"
)

func newTx() (*repomock.TxRunner, *repomock.CategoryRepository, *repomock.ItemRepository, *repomock.SaleRepository) {
	c, i, s := new(repomock.CategoryRepository), new(repomock.ItemRepository), new(repomock.SaleRepository)
	return &repomock.TxRunner{Categories: c, Items: i, Sales: s}, c, i, s
}

func strPtr(s string) *string { return &s }

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	tx, repo, _, _ := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	ctx := context.Background()
	repo.On("GetByName", ctx, "Bebidas").Return(&entity.Category{ID: "c1", Name: "Bebidas"}, nil)

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "  Bebidas "})
	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryCreate_OK(t *testing.T) {
	tx, repo, _, _ := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	ctx := context.Background()
	repo.On("GetByName", ctx, "Snacks").Return(nil, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Name == "Snacks" && c.Description == "Dulces y salados" && c.ID != ""
	})).Return(nil)

	out, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Snacks", Description: " Dulces y salados "})
	require.NoError(t, err)
	assert.Equal(t, "Snacks", out.Name)
	repo.AssertExpectations(t)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	tx, repo, _, _ := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryUpdate_Parcial(t *testing.T) {
	tx, repo, _, _ := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	ctx := context.Background()
	existing := &entity.Category{ID: "c1", Name: "Bebidas", Description: "Frías", CreatedAt: time.Now()}
	repo.On("GetByID", ctx, "c1").Return(existing, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Name == "Bebidas" && c.Description == "Frías y calientes"
	})).Return(nil)

	out, err := uc.Update(ctx, "c1", dto.UpdateCategoryRequest{Description: strPtr("Frías y calientes")})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)
	repo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestCategoryUpdate_NombreDeOtra(t *testing.T) {
	tx, repo, _, _ := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	ctx := context.Background()
	repo.On("GetByID", ctx, "c1").Return(&entity.Category{ID: "c1", Name: "Bebidas"}, nil)
	repo.On("GetByName", ctx, "Snacks").Return(&entity.Category{ID: "c2", Name: "Snacks"}, nil)

	_, err := uc.Update(ctx, "c1", dto.UpdateCategoryRequest{Name: strPtr("Snacks")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategoryGet_NoExiste(t *testing.T) {
	tx, repo, _, _ := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	repo.On("GetByID", mock.Anything, "nada").Return(nil, nil)

	_, err := uc.GetByID(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_CascadaArticulosYVentas(t *testing.T) {
	tx, repo, items, sales := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	ctx := context.Background()

	repo.On("GetByID", ctx, "c1").Return(&entity.Category{ID: "c1", Name: "Bebidas"}, nil)
	items.On("ListIDsByCategory", ctx, "c1").Return([]string{"i1", "i2", "i3"}, nil)
	sales.On("DeleteByItems", ctx, []string{"i1", "i2", "i3"}).Return(int64(7), nil)
	items.On("DeleteByCategory", ctx, "c1").Return(int64(3), nil)
	repo.On("Delete", ctx, "c1").Return(nil)

	out, err := uc.Delete(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ItemsDeleted)
	assert.Equal(t, int64(7), out.SalesDeleted)
	assert.Equal(t, 1, tx.Calls)
	repo.AssertExpectations(t)
	items.AssertExpectations(t)
	sales.AssertExpectations(t)
}

func TestCategoryDelete_SinArticulos(t *testing.T) {
	tx, repo, items, sales := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	ctx := context.Background()

	repo.On("GetByID", ctx, "c1").Return(&entity.Category{ID: "c1"}, nil)
	items.On("ListIDsByCategory", ctx, "c1").Return([]string{}, nil)
	repo.On("Delete", ctx, "c1").Return(nil)

	out, err := uc.Delete(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, out.ItemsDeleted)
	sales.AssertNotCalled(t, "DeleteByItems", mock.Anything, mock.Anything)
}

func TestCategoryDelete_FalloAbortaLaCascada(t *testing.T) {
	tx, repo, items, sales := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)
	ctx := context.Background()
	boom := errors.New("deadlock")

	repo.On("GetByID", ctx, "c1").Return(&entity.Category{ID: "c1"}, nil)
	items.On("ListIDsByCategory", ctx, "c1").Return([]string{"i1"}, nil)
	sales.On("DeleteByItems", ctx, []string{"i1"}).Return(int64(0), boom)

	_, err := uc.Delete(ctx, "c1")
	assert.ErrorIs(t, err, boom)
	items.AssertNotCalled(t, "DeleteByCategory", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryList_PaginaYConteo(t *testing.T) {
	tx, repo, _, _ := newTx()
	uc := usecase.NewCategoryUseCase(repo, tx)

	repo.On("CountMatching", mock.Anything, "beb").Return(25, nil)
	repo.On("ListWithItemCounts", mock.Anything, "beb", 10, 10).Return([]repository.CategoryWithItemCount{
		{Category: entity.Category{ID: "c1", Name: "Bebidas"}, ItemsCount: 4},
	}, nil)

	out, err := uc.List(context.Background(), dto.CategoryListRequest{Page: "2", Limit: "10", Search: " beb "})
	require.NoError(t, err)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, 4, out.Categories[0].ItemsCount)
	assert.Equal(t, 2, out.Pagination.CurrentPage)
	assert.Equal(t, 3, out.Pagination.TotalPages)
	assert.True(t, out.Pagination.HasNextPage)
	assert.True(t, out.Pagination.HasPrevPage)
}
