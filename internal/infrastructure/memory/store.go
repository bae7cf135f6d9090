// Package memory implementa los repositorios sobre mapas en memoria con transacciones
// por snapshot. Mismas garantías que el adaptador PostgreSQL para un solo proceso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Verduleria-api/internal/application/ports"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var _ ports.TxRunner = (*Store)(nil)

// Store estado completo. Las transacciones se serializan con txMu; mu protege cada lectura/escritura.
// Las lecturas fuera de transacción pueden ver escrituras aún no confirmadas.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	counterparties map[string]entity.Counterparty
	products       map[string]entity.Product
	invoices       map[string]entity.Invoice
	payments       []entity.Payment
	inventory      map[string]entity.InventoryRecord
	movements      []entity.StockMovement
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		counterparties: make(map[string]entity.Counterparty),
		products:       make(map[string]entity.Product),
		invoices:       make(map[string]entity.Invoice),
		inventory:      make(map[string]entity.InventoryRecord),
	}
}

// Repositories devuelve los repositorios sobre el store.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Invoices:       &invoiceRepo{s: s},
		Payments:       &paymentRepo{s: s},
		Inventory:      &inventoryRepo{s: s},
		Movements:      &movementRepo{s: s},
		Products:       &productRepo{s: s},
		Counterparties: &counterpartyRepo{s: s},
	}
}

// Run ejecuta fn en una transacción: si fn devuelve error se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	snap := s.snapshot()
	if err := fn(s.Repositories()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// AddCounterparty registra un cliente o proveedor (catálogo externo al motor).
func (s *Store) AddCounterparty(c entity.Counterparty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counterparties[c.ID] = c
}

// AddProduct registra un producto del catálogo.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

type snapshot struct {
	invoices  map[string]entity.Invoice
	payments  []entity.Payment
	inventory map[string]entity.InventoryRecord
	movements []entity.StockMovement
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		invoices:  make(map[string]entity.Invoice, len(s.invoices)),
		payments:  append([]entity.Payment(nil), s.payments...),
		inventory: make(map[string]entity.InventoryRecord, len(s.inventory)),
		movements: append([]entity.StockMovement(nil), s.movements...),
	}
	for k, v := range s.invoices {
		snap.invoices[k] = v
	}
	for k, v := range s.inventory {
		snap.inventory[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = snap.invoices
	s.payments = snap.payments
	s.inventory = snap.inventory
	s.movements = snap.movements
}

// UpsertCounterparty permite usar el store como destino de la importación de catálogo.
func (s *Store) UpsertCounterparty(_ context.Context, c entity.Counterparty) error {
	s.AddCounterparty(c)
	return nil
}

// UpsertProduct permite usar el store como destino de la importación de catálogo.
func (s *Store) UpsertProduct(_ context.Context, p entity.Product) error {
	s.AddProduct(p)
	return nil
}
