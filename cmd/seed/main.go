// seed importa el catálogo de productos, clientes y proveedores desde un CSV a PostgreSQL.
//
// Uso: go run ./cmd/seed [-encoding windows-1252] [-dry-run] catalogo.csv
// Encabezado: tipo,id,nombre,unidad,categoria,activo[,identificacion,telefono,email]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Verduleria-api/internal/application/catalog"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Verduleria-api/internal/infrastructure/redis"
	"github.com/jhoicas/Verduleria-api/pkg/config"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

func main() {
	encoding := flag.String("encoding", catalog.EncodingUTF8, "codificación del CSV: utf-8, iso-8859-1, windows-1252")
	dryRun := flag.Bool("dry-run", false, "solo validar el archivo")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed [-encoding ENC] [-dry-run] catalogo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	batch, err := catalog.ReadCSV(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("CSV inválido")
	}
	log.Info().Int("productos", len(batch.Products)).Int("contrapartes", len(batch.Counterparties)).Msg("catálogo leído")
	if *dryRun {
		return
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("iniciar transacción")
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := catalog.Apply(ctx, postgres.NewCatalogWriter(tx), batch); err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("confirmar importación")
	}
	log.Info().Msg("catálogo importado")

	// La API cachea los productos activos en Redis; tras el import la lista queda vieja.
	if !cfg.Redis.Enabled() {
		return
	}
	rdb, err := infraredis.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible; la caché de productos expira por TTL")
		return
	}
	defer rdb.Close()
	cache := infraredis.NewCachedProducts(postgres.NewProductRepository(pool), rdb, cfg.Redis.ProductsCacheTTL, log)
	if err := catalog.Invalidate(ctx, cache); err != nil {
		log.Warn().Err(err).Msg("invalidar caché de productos")
		return
	}
	log.Info().Msg("caché de productos invalidada")
}
