package entity

import "time"

// Product referencia de producto (catálogo de solo lectura para el motor).
type Product struct {
	ID          string
	Name        string
	Category    string
	UnitMeasure string // kg, unidad, caja, ...
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
