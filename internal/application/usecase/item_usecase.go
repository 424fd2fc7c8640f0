package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/pagination"
)

// ItemUseCase casos de uso CRUD para artículos del inventario.
type ItemUseCase struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
	tx           TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, categoryRepo repository.CategoryRepository, tx TxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, categoryRepo: categoryRepo, tx: tx}
}

// Create crea un artículo. Nombre único, precio y cantidad no negativos, categoría existente si se indica.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := entity.NormalizeName(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	quantity := 0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
	}
	category, err := uc.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el artículo %q ya existe", domain.ErrConflict, name)
	}

	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Quantity:    quantity,
		CreatedAt:   time.Now(),
	}
	if category != nil {
		item.CategoryID = category.ID
		item.CategoryName = category.Name
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo con el nombre de su categoría.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := entity.NormalizeName(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede estar vacío", domain.ErrValidation)
		}
		if name != item.Name {
			existing, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != item.ID {
				return nil, fmt.Errorf("%w: el artículo %q ya existe", domain.ErrConflict, name)
			}
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
		}
		item.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
		}
		item.Quantity = *in.Quantity
	}
	if in.CategoryID != nil {
		category, err := uc.resolveCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		item.CategoryID, item.CategoryName = "", ""
		if category != nil {
			item.CategoryID, item.CategoryName = category.ID, category.Name
		}
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete borra el artículo y antes todas sus ventas.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.DeleteResponse{Message: "artículo y ventas eliminados", ItemsDeleted: 1}
	err = uc.tx.Run(ctx, func(
		_ repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		saleRepo repository.SaleRepository,
	) error {
		var err error
		if out.SalesDeleted, err = saleRepo.DeleteByItem(ctx, item.ID); err != nil {
			return err
		}
		return itemRepo.Delete(ctx, item.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("borrar artículo: %w", err)
	}
	return out, nil
}

// List lista artículos paginados, filtrados por search y categoría.
func (uc *ItemUseCase) List(ctx context.Context, in dto.ItemListRequest) (*dto.ItemListResponse, error) {
	page := pagination.FromQuery(in.Page, in.Limit)
	filter := repository.ItemListFilter{
		Search:     strings.TrimSpace(in.Search),
		CategoryID: strings.TrimSpace(in.Category),
	}

	var (
		total int
		list  []*entity.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.repo.CountMatching(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = uc.repo.List(gctx, filter, page.Limit(), page.Skip())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Pagination: page.Meta(total)}, nil
}

// resolveCategory devuelve nil si id está vacío; error de validación si la categoría no existe.
func (uc *ItemUseCase) resolveCategory(ctx context.Context, id string) (*entity.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: la categoría %q no existe", domain.ErrValidation, id)
	}
	return category, nil
}

func (uc *ItemUseCase) find(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: artículo no encontrado", domain.ErrNotFound)
	}
	return item, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Description:  i.Description,
		Price:        i.Price,
		CategoryID:   i.CategoryID,
		CategoryName: i.CategoryName,
		Quantity:     i.Quantity,
		LowStock:     i.IsLowStock(),
		CreatedAt:    i.CreatedAt,
	}
}
