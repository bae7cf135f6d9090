package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `
	i.id, i.kind, i.counterparty_id, COALESCE(c.name, ''), i.number, i.issue_date, i.due_date,
	i.amount, i.balance, i.status, i.description, i.version, i.created_by, i.created_at, i.updated_at`

const invoiceFrom = `
	FROM invoices i LEFT JOIN counterparties c ON c.id = i.counterparty_id`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, kind, counterparty_id, number, issue_date, due_date, amount, balance,
		                      status, description, version, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Kind, inv.CounterpartyID, inv.Number, inv.IssueDate, inv.DueDate,
		inv.Amount, inv.Balance, inv.Status, inv.Description, inv.Version, inv.CreatedBy,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.get(ctx, "SELECT"+invoiceColumns+invoiceFrom+" WHERE i.id = $1", id, "get invoice")
}

// GetForUpdate obtiene la factura y bloquea la fila (SELECT FOR UPDATE).
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.get(ctx, "SELECT"+invoiceColumns+invoiceFrom+" WHERE i.id = $1 FOR UPDATE OF i", id, "get invoice for update")
}

func (r *InvoiceRepo) get(ctx context.Context, query, id, op string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return inv, nil
}

// Update persiste la factura si la versión coincide e incrementa inv.Version.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET counterparty_id = $2,
		    number          = $3,
		    issue_date      = $4,
		    due_date        = $5,
		    amount          = $6,
		    balance         = $7,
		    status          = $8,
		    description     = $9,
		    updated_at      = $10,
		    version         = version + 1
		WHERE id = $1 AND version = $11`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.CounterpartyID, inv.Number, inv.IssueDate, inv.DueDate,
		inv.Amount, inv.Balance, inv.Status, inv.Description, inv.UpdatedAt, inv.Version,
	)
	if err != nil {
		return wrapErr("update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update invoice %s versión %d: %w", inv.ID, inv.Version, domain.ErrConflict)
	}
	inv.Version++
	return nil
}

// Delete elimina la factura. La FK de payments (ON DELETE RESTRICT) impide borrar facturas con abonos.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete invoice %s: %w", id, domain.ErrInvoiceHasPayments)
		}
		return wrapErr("delete invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("factura", id)
	}
	return nil
}

// List lista facturas filtradas, de la más reciente a la más antigua.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	where, args := invoiceWhere(f)
	query := "SELECT" + invoiceColumns + invoiceFrom + where + " ORDER BY i.issue_date DESC, i.number"
	page, args := pageClause(args, f.Limit, f.Offset)
	query += page

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list invoices", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, wrapErr("scan invoice", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list invoices", err)
	}
	return list, nil
}

// Count total de facturas que cumplen el filtro.
func (r *InvoiceRepo) Count(ctx context.Context, f repository.InvoiceFilter) (int, error) {
	where, args := invoiceWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM invoices i"+where, args...).Scan(&n); err != nil {
		return 0, wrapErr("count invoices", err)
	}
	return n, nil
}

func invoiceWhere(f repository.InvoiceFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.Kind != "" {
		args = append(args, f.Kind)
		where = append(where, fmt.Sprintf("i.kind = $%d", len(args)))
	}
	if f.CounterpartyID != "" {
		args = append(args, f.CounterpartyID)
		where = append(where, fmt.Sprintf("i.counterparty_id = $%d", len(args)))
	}
	if f.OnlyPending {
		where = append(where, "i.balance > 0")
	}
	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func scanInvoice(row rowScanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.Kind, &inv.CounterpartyID, &inv.CounterpartyName, &inv.Number,
		&inv.IssueDate, &inv.DueDate, &inv.Amount, &inv.Balance, &inv.Status, &inv.Description,
		&inv.Version, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
