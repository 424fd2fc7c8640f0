// seed crea el administrador inicial (SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD / SEED_ADMIN_NAME).
// Si el email ya existe no lo modifica.
//
// Uso: go run ./cmd/seed [-demo]
// Con -demo además inserta categorías, artículos y ventas de ejemplo en una base vacía.
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-api/pkg/config"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

type demoItem struct {
	name     string
	price    string
	quantity int
}

var demoCatalog = map[string][]demoItem{
	"Bebidas": {
		{"Agua mineral 600ml", "1.20", 48},
		{"Jugo de naranja 1L", "3.50", 7},
		{"Café molido 500g", "8.90", 15},
	},
	"Snacks": {
		{"Papas fritas 150g", "2.10", 30},
		{"Galletas de avena", "1.80", 4},
	},
	"Limpieza": {
		{"Detergente líquido 2L", "6.40", 12},
		{"Esponjas x3", "1.50", 0},
	},
}

func main() {
	demo := flag.Bool("demo", false, "insertar datos de ejemplo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := seedAdmin(ctx, pool, cfg.Seed); err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("email", entity.NormalizeEmail(cfg.Seed.AdminEmail)).Msg("administrador listo")

	if !*demo {
		return
	}
	n, err := seedDemo(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("datos de ejemplo")
	}
	log.Info().Int("ventas", n).Msg("datos de ejemplo insertados")
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, sc config.SeedConfig) error {
	users := postgres.NewUserRepository(pool)
	email := entity.NormalizeEmail(sc.AdminEmail)
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := auth.HashPassword(sc.AdminPassword)
	if err != nil {
		return err
	}
	now := time.Now()
	return users.Create(ctx, &entity.User{
		ID:           uuid.NewString(),
		Name:         sc.AdminName,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// seedDemo no hace nada si ya hay categorías. Devuelve cuántas ventas insertó.
func seedDemo(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	categories := postgres.NewCategoryRepository(pool)
	items := postgres.NewItemRepository(pool)
	sales := postgres.NewSaleRepository(pool)

	count, err := categories.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}

	now := time.Now()
	var created []*entity.Item
	for catName, list := range demoCatalog {
		cat := &entity.Category{ID: uuid.NewString(), Name: catName, CreatedAt: now}
		if err := categories.Create(ctx, cat); err != nil {
			return 0, err
		}
		for _, d := range list {
			it := &entity.Item{
				ID:         uuid.NewString(),
				Name:       d.name,
				Price:      decimal.RequireFromString(d.price),
				Quantity:   d.quantity,
				CategoryID: cat.ID,
				CreatedAt:  now,
			}
			if err := items.Create(ctx, it); err != nil {
				return 0, err
			}
			created = append(created, it)
		}
	}

	// Ventas repartidas en los últimos 120 días.
	total := 0
	for _, it := range created {
		for range 3 + rand.IntN(6) {
			qty := 1 + rand.IntN(5)
			s := &entity.Sale{
				ID:          uuid.NewString(),
				ItemID:      it.ID,
				Quantity:    qty,
				TotalAmount: it.Price.Mul(decimal.NewFromInt(int64(qty))),
				SaleDate:    now.Add(-time.Duration(rand.IntN(120*24)) * time.Hour),
				CreatedAt:   now,
			}
			if err := s.Validate(); err != nil {
				return total, err
			}
			if err := sales.Create(ctx, s); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
