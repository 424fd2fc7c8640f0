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

// CategoryUseCase casos de uso CRUD para categorías, incluido el borrado en cascada.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx}
}

// Create crea una categoría. El nombre debe ser único (se comprueba antes de escribir).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := entity.NormalizeName(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: la categoría %q ya existe", domain.ErrConflict, name)
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := entity.NormalizeName(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede estar vacío", domain.ErrValidation)
		}
		if name != category.Name {
			existing, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != category.ID {
				return nil, fmt.Errorf("%w: la categoría %q ya existe", domain.ErrConflict, name)
			}
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = strings.TrimSpace(*in.Description)
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete borra la categoría junto con sus artículos y las ventas de esos artículos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*dto.DeleteResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.DeleteResponse{Message: "categoría, artículos y ventas eliminados"}
	err = uc.tx.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		saleRepo repository.SaleRepository,
	) error {
		itemIDs, err := itemRepo.ListIDsByCategory(ctx, category.ID)
		if err != nil {
			return err
		}
		if len(itemIDs) > 0 {
			if out.SalesDeleted, err = saleRepo.DeleteByItems(ctx, itemIDs); err != nil {
				return err
			}
			if out.ItemsDeleted, err = itemRepo.DeleteByCategory(ctx, category.ID); err != nil {
				return err
			}
		}
		return categoryRepo.Delete(ctx, category.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("borrar categoría: %w", err)
	}
	return out, nil
}

// List lista categorías con su número de artículos, filtradas por search y paginadas.
// El total y la página se consultan en paralelo.
func (uc *CategoryUseCase) List(ctx context.Context, in dto.CategoryListRequest) (*dto.CategoryListResponse, error) {
	page := pagination.FromQuery(in.Page, in.Limit)
	search := strings.TrimSpace(in.Search)

	var (
		total int
		rows  []repository.CategoryWithItemCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.repo.CountMatching(gctx, search)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = uc.repo.ListWithItemCounts(gctx, search, page.Limit(), page.Skip())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	categories := make([]dto.CategoryWithCountResponse, 0, len(rows))
	for i := range rows {
		categories = append(categories, dto.CategoryWithCountResponse{
			CategoryResponse: *toCategoryResponse(&rows[i].Category),
			ItemsCount:       rows[i].ItemsCount,
		})
	}
	return &dto.CategoryListResponse{
		Categories: categories,
		Pagination: page.Meta(total),
	}, nil
}

func (uc *CategoryUseCase) find(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
