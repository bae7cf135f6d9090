package memory

import (
	"time"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
)

// SeedDemo carga un catálogo mínimo de clientes, proveedores y productos para STORE=memory.
func (s *Store) SeedDemo() {
	now := time.Now()
	for _, c := range []entity.Counterparty{
		{ID: "cli-sodita", Kind: entity.CounterpartyCliente, Name: "Soda La Esquina", Active: true, CreatedAt: now},
		{ID: "cli-hotel", Kind: entity.CounterpartyCliente, Name: "Hotel Central", Active: true, CreatedAt: now},
		{ID: "prov-cenada", Kind: entity.CounterpartyProveedor, Name: "Distribuidora Cenada", Active: true, CreatedAt: now},
		{ID: "prov-finca", Kind: entity.CounterpartyProveedor, Name: "Finca El Roble", Active: true, CreatedAt: now},
	} {
		s.AddCounterparty(c)
	}
	for _, p := range []entity.Product{
		{ID: "prod-tomate", Name: "Tomate", Category: "verduras", UnitMeasure: "kg", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: "prod-papa", Name: "Papa", Category: "verduras", UnitMeasure: "kg", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: "prod-banano", Name: "Banano", Category: "frutas", UnitMeasure: "unidad", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: "prod-culantro", Name: "Culantro", Category: "hierbas", UnitMeasure: "rollo", Active: false, CreatedAt: now, UpdatedAt: now},
	} {
		s.AddProduct(p)
	}
}
