package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

func TestItemCreate_CantidadPorDefectoYCategoria(t *testing.T) {
	tx, categories, items, _ := newTx()
	uc := usecase.NewItemUseCase(items, categories, tx)
	ctx := context.Background()

	categories.On("GetByID", ctx, "c1").Return(&entity.Category{ID: "c1", Name: "Periféricos"}, nil)
	items.On("GetByName", ctx, "Teclado").Return(nil, nil)
	items.On("Create", ctx, mock.MatchedBy(func(it *entity.Item) bool {
		return it.Quantity == 0 && it.CategoryID == "c1" && it.Price.Equal(decimal.NewFromInt(50))
	})).Return(nil)

	out, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Teclado", Price: decimal.NewFromInt(50), CategoryID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.Equal(t, "Periféricos", out.CategoryName)
	assert.True(t, out.LowStock)
}

func TestItemCreate_Validaciones(t *testing.T) {
	tx, categories, items, _ := newTx()
	uc := usecase.NewItemUseCase(items, categories, tx)
	ctx := context.Background()
	neg := -1

	_, err := uc.Create(ctx, dto.CreateItemRequest{Name: "X", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "X", Price: decimal.NewFromInt(1), Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrValidation)

	categories.On("GetByID", ctx, "fantasma").Return(nil, nil)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "X", Price: decimal.NewFromInt(1), CategoryID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemCreate_NombreDuplicado(t *testing.T) {
	tx, categories, items, _ := newTx()
	uc := usecase.NewItemUseCase(items, categories, tx)
	items.On("GetByName", mock.Anything, "Mouse").Return(&entity.Item{ID: "i1", Name: "Mouse"}, nil)

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{Name: "Mouse", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestItemUpdate_QuitarCategoria(t *testing.T) {
	tx, categories, items, _ := newTx()
	uc := usecase.NewItemUseCase(items, categories, tx)
	ctx := context.Background()
	qty := 25

	items.On("GetByID", ctx, "i1").Return(&entity.Item{ID: "i1", Name: "Mouse", CategoryID: "c1", CategoryName: "Periféricos", Quantity: 3}, nil)
	items.On("Update", ctx, mock.MatchedBy(func(it *entity.Item) bool {
		return it.CategoryID == "" && it.Quantity == 25 && it.Name == "Mouse"
	})).Return(nil)

	out, err := uc.Update(ctx, "i1", dto.UpdateItemRequest{CategoryID: strPtr(""), Quantity: &qty})
	require.NoError(t, err)
	assert.Empty(t, out.CategoryName)
	assert.False(t, out.LowStock)
}

func TestItemDelete_BorraVentasPrimero(t *testing.T) {
	tx, categories, items, sales := newTx()
	uc := usecase.NewItemUseCase(items, categories, tx)
	ctx := context.Background()

	items.On("GetByID", ctx, "i1").Return(&entity.Item{ID: "i1"}, nil)
	sales.On("DeleteByItem", ctx, "i1").Return(int64(4), nil)
	items.On("Delete", ctx, "i1").Return(nil)

	out, err := uc.Delete(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.SalesDeleted)
	assert.Equal(t, int64(1), out.ItemsDeleted)
	sales.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestItemDelete_NoExiste(t *testing.T) {
	tx, categories, items, _ := newTx()
	uc := usecase.NewItemUseCase(items, categories, tx)
	items.On("GetByID", mock.Anything, "x").Return(nil, nil)

	_, err := uc.Delete(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, tx.Calls)
}

func TestItemList_Filtros(t *testing.T) {
	tx, categories, items, _ := newTx()
	uc := usecase.NewItemUseCase(items, categories, tx)
	filter := repository.ItemListFilter{Search: "cable", CategoryID: "c1"}

	items.On("CountMatching", mock.Anything, filter).Return(1, nil)
	items.On("List", mock.Anything, filter, 10, 0).Return([]*entity.Item{{ID: "i1", Name: "Cable", Quantity: 50}}, nil)

	out, err := uc.List(context.Background(), dto.ItemListRequest{Search: "cable", Category: "c1"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Pagination.TotalPages)
	assert.False(t, out.Pagination.HasNextPage)
}
