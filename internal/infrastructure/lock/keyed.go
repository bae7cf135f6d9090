// Package lock implementa el bloqueo por entidad dentro de un solo proceso.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Verduleria-api/internal/application/ports"
	"github.com/jhoicas/Verduleria-api/internal/domain"
)

var _ ports.Locker = (*KeyedLocker)(nil)

// DefaultWait espera máxima por un bloqueo si no se configura otra.
const DefaultWait = 5 * time.Second

type entry struct {
	ch   chan struct{}
	refs int
}

// KeyedLocker un mutex por clave; las entradas se liberan cuando nadie las usa.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*entry
	wait  time.Duration
}

// NewKeyedLocker crea el locker. wait <= 0 usa DefaultWait.
func NewKeyedLocker(wait time.Duration) *KeyedLocker {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &KeyedLocker{locks: make(map[string]*entry), wait: wait}
}

// Acquire bloquea key hasta obtenerla, agotar la espera o cancelarse ctx.
func (l *KeyedLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	timer := time.NewTimer(l.wait)
	defer timer.Stop()
	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, e)
		return nil, fmt.Errorf("lock %s: %v: %w", key, ctx.Err(), domain.ErrLockTimeout)
	case <-timer.C:
		l.unref(key, e)
		return nil, fmt.Errorf("lock %s: %w", key, domain.ErrLockTimeout)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.unref(key, e)
		})
	}, nil
}

func (l *KeyedLocker) unref(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// Len cantidad de claves con bloqueos activos o en espera.
func (l *KeyedLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
