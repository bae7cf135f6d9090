package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/infrastructure/lock"
)

func TestKeyedLocker_SerializaMismaClave(t *testing.T) {
	l := lock.NewKeyedLocker(time.Second)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "invoice:1")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
	assert.Zero(t, l.Len())
}

func TestKeyedLocker_ClavesIndependientes(t *testing.T) {
	l := lock.NewKeyedLocker(50 * time.Millisecond)
	ctx := context.Background()

	r1, err := l.Acquire(ctx, "inventory:a")
	require.NoError(t, err)
	defer r1()
	r2, err := l.Acquire(ctx, "inventory:b")
	require.NoError(t, err)
	r2()
}

func TestKeyedLocker_Timeout(t *testing.T) {
	l := lock.NewKeyedLocker(20 * time.Millisecond)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "invoice:1")
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "invoice:1")
	assert.ErrorIs(t, err, domain.ErrLockTimeout)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = l.Acquire(cctx, "invoice:1")
	assert.ErrorIs(t, err, domain.ErrLockTimeout)

	release()
	release() // idempotente
	again, err := l.Acquire(ctx, "invoice:1")
	require.NoError(t, err)
	again()
	assert.Zero(t, l.Len())
}
