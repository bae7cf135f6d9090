package ports

import "context"

// Locker define el puerto de salida para la serialización por entidad.
// Cualquier adaptador (mutex en proceso, Redis) debe implementar esta interfaz.
// Acquire espera como máximo el tiempo configurado o hasta que ctx se cancele y
// devuelve domain.ErrLockTimeout si no obtuvo el bloqueo.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Claves de bloqueo por entidad.
func InvoiceLockKey(id string) string          { return "invoice:" + id }
func InventoryLockKey(id string) string        { return "inventory:" + id }
func InventoryProductLockKey(id string) string { return "inventory:product:" + id }
