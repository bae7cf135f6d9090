package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

var _ repository.ProductRepository = (*CachedProducts)(nil)

const activeProductsKey = "verduleria:products:active"

// CachedProducts decora un ProductRepository guardando en Redis la lista de productos activos.
// Si Redis falla se consulta directamente el repositorio.
type CachedProducts struct {
	next repository.ProductRepository
	rdb  goredis.UniversalClient
	ttl  time.Duration
	log  *logger.Logger
}

// NewCachedProducts construye el decorador.
func NewCachedProducts(next repository.ProductRepository, rdb goredis.UniversalClient, ttl time.Duration, log *logger.Logger) *CachedProducts {
	if log == nil {
		log = logger.Nop()
	}
	return &CachedProducts{next: next, rdb: rdb, ttl: ttl, log: log.Component("product-cache")}
}

// GetByID no se cachea: el estado activo debe verse de inmediato al registrar compras.
func (c *CachedProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return c.next.GetByID(ctx, id)
}

// ListActive devuelve la lista cacheada o la carga del repositorio y la guarda con TTL.
func (c *CachedProducts) ListActive(ctx context.Context) ([]*entity.Product, error) {
	data, err := c.rdb.Get(ctx, activeProductsKey).Bytes()
	switch {
	case err == nil:
		var list []*entity.Product
		if jerr := json.Unmarshal(data, &list); jerr == nil {
			c.log.Debug().Int("count", len(list)).Msg("productos activos desde caché")
			return list, nil
		}
		c.log.Warn().Msg("caché de productos corrupta; se recarga")
	case !errors.Is(err, goredis.Nil):
		c.log.Warn().Err(err).Msg("redis no disponible; lectura directa de productos")
	}

	list, err := c.next.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if raw, jerr := json.Marshal(list); jerr == nil {
		if serr := c.rdb.Set(ctx, activeProductsKey, raw, c.ttl).Err(); serr != nil {
			c.log.Warn().Err(serr).Msg("no se pudo guardar la caché de productos")
		}
	}
	return list, nil
}

// Invalidate elimina la lista cacheada.
func (c *CachedProducts) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, activeProductsKey).Err()
}
