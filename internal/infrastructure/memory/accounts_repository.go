package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository      = (*invoiceRepo)(nil)
	_ repository.PaymentRepository      = (*paymentRepo)(nil)
	_ repository.CounterpartyRepository = (*counterpartyRepo)(nil)
)

type invoiceRepo struct{ s *Store }

func (r *invoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[inv.ID]; ok {
		return fmt.Errorf("factura %s: %w", inv.ID, domain.ErrDuplicate)
	}
	for _, other := range r.s.invoices {
		if other.Kind == inv.Kind && other.CounterpartyID == inv.CounterpartyID && other.Number == inv.Number {
			return fmt.Errorf("numero de factura %s ya existe para la contraparte: %w", inv.Number, domain.ErrDuplicate)
		}
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r *invoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	r.s.fillCounterpartyName(&inv)
	return &inv, nil
}

// GetForUpdate equivale a GetByID: la transacción ya tiene acceso exclusivo al store.
func (r *invoiceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *invoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.invoices[inv.ID]
	if !ok {
		return domain.NotFound("factura", inv.ID)
	}
	if stored.Version != inv.Version {
		return fmt.Errorf("factura %s versión %d (esperada %d): %w", inv.ID, stored.Version, inv.Version, domain.ErrConflict)
	}
	for id, other := range r.s.invoices {
		if id != inv.ID && other.Kind == inv.Kind && other.CounterpartyID == inv.CounterpartyID && other.Number == inv.Number {
			return fmt.Errorf("numero de factura %s ya existe para la contraparte: %w", inv.Number, domain.ErrDuplicate)
		}
	}
	inv.Version++
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r *invoiceRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return domain.NotFound("factura", id)
	}
	for _, p := range r.s.payments {
		if p.InvoiceID == id {
			return fmt.Errorf("factura %s: %w", id, domain.ErrInvoiceHasPayments)
		}
	}
	delete(r.s.invoices, id)
	return nil
}

func (r *invoiceRepo) List(_ context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Invoice, 0)
	for _, inv := range r.s.invoices {
		if !matchInvoice(inv, f) {
			continue
		}
		r.s.fillCounterpartyName(&inv)
		out = append(out, &inv)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].IssueDate.Equal(out[j].IssueDate) {
			return out[i].IssueDate.After(out[j].IssueDate)
		}
		return out[i].Number < out[j].Number
	})
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *invoiceRepo) Count(_ context.Context, f repository.InvoiceFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, inv := range r.s.invoices {
		if matchInvoice(inv, f) {
			n++
		}
	}
	return n, nil
}

func matchInvoice(inv entity.Invoice, f repository.InvoiceFilter) bool {
	if f.Kind != "" && inv.Kind != f.Kind {
		return false
	}
	if f.CounterpartyID != "" && inv.CounterpartyID != f.CounterpartyID {
		return false
	}
	return !f.OnlyPending || inv.Balance.IsPositive()
}

// fillCounterpartyName requiere mu tomado.
func (s *Store) fillCounterpartyName(inv *entity.Invoice) {
	if cp, ok := s.counterparties[inv.CounterpartyID]; ok {
		inv.CounterpartyName = cp.Name
	}
}

type paymentRepo struct{ s *Store }

func (r *paymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[p.InvoiceID]; !ok {
		return domain.NotFound("factura", p.InvoiceID)
	}
	r.s.payments = append(r.s.payments, *p)
	return nil
}

func (r *paymentRepo) ListByInvoice(_ context.Context, invoiceID string) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Payment, 0)
	for _, p := range r.s.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, &p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *paymentRepo) CountByInvoice(_ context.Context, invoiceID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.payments {
		if p.InvoiceID == invoiceID {
			n++
		}
	}
	return n, nil
}

type counterpartyRepo struct{ s *Store }

func (r *counterpartyRepo) GetByID(_ context.Context, id string) (*entity.Counterparty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.counterparties[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *counterpartyRepo) List(_ context.Context, kind string) ([]*entity.Counterparty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Counterparty, 0)
	for _, c := range r.s.counterparties {
		if kind != "" && c.Kind != kind {
			continue
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return items[:0]
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
