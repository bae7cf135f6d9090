package postgres

import (
	"context"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo abonos sobre PostgreSQL (append-only).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un abono.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, invoice_id, amount, payment_date, method, reference, recorded_by, recorded_by_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.InvoiceID, p.Amount, p.Date, p.Method, p.Reference, p.RecordedBy, p.RecordedByName, p.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert payment", err)
	}
	return nil
}

// ListByInvoice abonos de la factura en orden cronológico.
func (r *PaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, invoice_id, amount, payment_date, method, reference, recorded_by, recorded_by_name, created_at
		FROM payments WHERE invoice_id = $1
		ORDER BY payment_date, seq`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, wrapErr("list payments", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Date, &p.Method, &p.Reference,
			&p.RecordedBy, &p.RecordedByName, &p.CreatedAt); err != nil {
			return nil, wrapErr("scan payment", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list payments", err)
	}
	return list, nil
}

// CountByInvoice cantidad de abonos de la factura.
func (r *PaymentRepo) CountByInvoice(ctx context.Context, invoiceID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM payments WHERE invoice_id = $1`, invoiceID).Scan(&n); err != nil {
		return 0, wrapErr("count payments", err)
	}
	return n, nil
}
