//go:build integration

package redis_test

// Ejecutar con: go test -tags integration ./internal/infrastructure/redis/... -v

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/memory"
	infraredis "github.com/jhoicas/Verduleria-api/internal/infrastructure/redis"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

func setupRedis(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	rdb, err := infraredis.NewClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestLocker_ExclusionMutua(t *testing.T) {
	rdb := setupRedis(t)
	locker := infraredis.NewLocker(rdb, 5*time.Second, 5*time.Second, logger.Nop())
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(ctx, "invoice:f-1")
			require.NoError(t, err)
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestLocker_TimeoutYTTL(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	holder := infraredis.NewLocker(rdb, 300*time.Millisecond, time.Second, logger.Nop())
	waiter := infraredis.NewLocker(rdb, time.Second, 50*time.Millisecond, logger.Nop())

	release, err := holder.Acquire(ctx, "inventory:i-1")
	require.NoError(t, err)

	_, err = waiter.Acquire(ctx, "inventory:i-1")
	assert.ErrorIs(t, err, domain.ErrLockTimeout)

	// Tras expirar el TTL otro proceso puede tomarlo; el release tardío no lo libera.
	time.Sleep(400 * time.Millisecond)
	again, err := waiter.Acquire(ctx, "inventory:i-1")
	require.NoError(t, err)
	release()
	_, err = holder.Acquire(ctx, "inventory:i-1")
	assert.ErrorIs(t, err, domain.ErrLockTimeout)
	again()
}

func TestCachedProducts(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	store := memory.New()
	store.SeedDemo()
	cache := infraredis.NewCachedProducts(store.Repositories().Products, rdb, time.Minute, logger.Nop())

	first, err := cache.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Un producto nuevo no aparece hasta invalidar.
	store.AddProduct(entity.Product{ID: "prod-chayote", Name: "Chayote", Active: true})
	cached, err := cache.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 3)

	require.NoError(t, cache.Invalidate(ctx))
	fresh, err := cache.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 4)

	p, err := cache.GetByID(ctx, "prod-chayote")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Chayote", p.Name)
}
