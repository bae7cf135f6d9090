// Package bootstrap arma el almacenamiento, el locker y los casos de uso a partir de la configuración.
// Lo comparten cmd/api y cmd/verify.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Verduleria-api/internal/application/accounts"
	"github.com/jhoicas/Verduleria-api/internal/application/catalog"
	"github.com/jhoicas/Verduleria-api/internal/application/inventory"
	"github.com/jhoicas/Verduleria-api/internal/application/ports"
	"github.com/jhoicas/Verduleria-api/internal/application/reconciliation"
	"github.com/jhoicas/Verduleria-api/internal/application/reports"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/lock"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Verduleria-api/internal/infrastructure/redis"
	"github.com/jhoicas/Verduleria-api/pkg/config"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// Services casos de uso listos para los handlers o la CLI.
type Services struct {
	Accounts  *accounts.UseCase
	Inventory *inventory.UseCase
	Reports   *reports.UseCase
	Catalog   *catalog.UseCase

	// Pool es nil con STORE=memory.
	Pool  *pgxpool.Pool
	Redis *goredis.Client

	closers []func()
}

// Close libera conexiones en orden inverso de apertura.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// Open conecta el almacenamiento configurado (PostgreSQL o memoria), el locker
// (Redis o en proceso) y construye los casos de uso.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Services, error) {
	s := &Services{}
	var (
		tx    ports.TxRunner
		repos repository.Repositories
	)

	switch cfg.App.Store {
	case config.StoreMemory:
		store := memory.New()
		store.SeedDemo()
		tx, repos = store, store.Repositories()
		log.Warn().Msg("STORE=memory: los datos no se persisten")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s.Pool = pool
		s.closers = append(s.closers, pool.Close)
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				s.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Msg("esquema aplicado")
		}
		tx, repos = postgres.NewTxRunner(pool), postgres.NewRepositories(pool)
	}

	var locker ports.Locker
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.Redis = rdb
		s.closers = append(s.closers, func() { _ = rdb.Close() })
		locker = infraredis.NewLocker(rdb, cfg.Redis.LockTTL, cfg.Redis.LockWait, log)
		if cfg.Redis.ProductsCacheTTL > 0 {
			repos.Products = infraredis.NewCachedProducts(repos.Products, rdb, cfg.Redis.ProductsCacheTTL, log)
		}
	} else {
		locker = lock.NewKeyedLocker(cfg.Redis.LockWait)
	}

	coordinator := reconciliation.NewCoordinator(log)
	s.Accounts = accounts.NewUseCase(tx, repos, locker, coordinator, log)
	s.Inventory = inventory.NewUseCase(tx, repos, locker, coordinator, log, inventory.Options{
		DefaultStockMinimo: cfg.Ledger.DefaultStockMinimo,
	})
	s.Reports = reports.NewUseCase(repos.Invoices, repos.Inventory, reports.NewFormatter(cfg.Report.Locale, cfg.Report.CurrencySymbol))
	s.Catalog = catalog.NewUseCase(repos.Products, repos.Counterparties)
	return s, nil
}
