package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Verduleria-api/internal/application/ports"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

var _ ports.Locker = (*Locker)(nil)

const lockPrefix = "verduleria:lock:"

// Solo borra la clave si el token coincide: nunca libera un bloqueo ajeno tras expirar el propio.
var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// Locker bloqueo por entidad con SET NX PX. El TTL acota el bloqueo si el proceso muere.
type Locker struct {
	rdb   goredis.UniversalClient
	ttl   time.Duration
	wait  time.Duration
	retry time.Duration
	log   *logger.Logger
}

// NewLocker construye el locker. ttl y wait deben ser > 0.
func NewLocker(rdb goredis.UniversalClient, ttl, wait time.Duration, log *logger.Logger) *Locker {
	if log == nil {
		log = logger.Nop()
	}
	return &Locker{rdb: rdb, ttl: ttl, wait: wait, retry: 25 * time.Millisecond, log: log.Component("redis-lock")}
}

// Acquire reintenta SET NX hasta obtener el bloqueo, agotar wait o cancelarse ctx.
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := lockPrefix + key
	token := uuid.New().String()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.rdb.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("lock %s: %v: %w", key, err, domain.ErrLockTimeout)
			}
			return nil, fmt.Errorf("lock %s: %v: %w", key, err, domain.ErrTransport)
		}
		if ok {
			return l.releaser(redisKey, token), nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("lock %s: %w", key, domain.ErrLockTimeout)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("lock %s: %v: %w", key, ctx.Err(), domain.ErrLockTimeout)
		case <-time.After(l.retry):
		}
	}
}

func (l *Locker) releaser(redisKey, token string) func() {
	released := false
	return func() {
		if released {
			return
		}
		released = true
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.rdb, []string{redisKey}, token).Err(); err != nil {
			l.log.Warn().Err(err).Str("key", redisKey).Msg("no se pudo liberar el bloqueo; expirará por TTL")
		}
	}
}
