// Package accounts implementa los casos de uso de cuentas por cobrar y por pagar:
// registro de facturas, abonos, edición con reconciliación de saldo y verificación.
package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/application/ports"
	"github.com/jhoicas/Verduleria-api/internal/application/reconciliation"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/ledger"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// UseCase casos de uso de facturas y abonos. ApplyPayment, UpdateInvoice y DeleteInvoice
// se serializan por factura (Locker + SELECT FOR UPDATE + versión).
type UseCase struct {
	tx          ports.TxRunner
	locker      ports.Locker
	repos       repository.Repositories // lecturas fuera de transacción
	coordinator *reconciliation.Coordinator
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	tx ports.TxRunner,
	repos repository.Repositories,
	locker ports.Locker,
	coordinator *reconciliation.Coordinator,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if coordinator == nil {
		coordinator = reconciliation.NewCoordinator(log)
	}
	return &UseCase{
		tx:          tx,
		locker:      locker,
		repos:       repos,
		coordinator: coordinator,
		log:         log.Component("accounts"),
		now:         time.Now,
	}
}

// RegisterInvoice crea una factura con saldo = monto. La contraparte debe existir y
// corresponder al tipo: cobrar → cliente, pagar → proveedor.
func (uc *UseCase) RegisterInvoice(ctx context.Context, actor dto.Actor, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	issue, err := dto.ParseDate(in.IssueDate)
	if err != nil || issue == nil {
		return nil, domain.Invalid("fecha_emision", "fecha inválida, use AAAA-MM-DD")
	}
	due, err := dto.ParseDate(in.DueDate)
	if err != nil {
		return nil, domain.Invalid("fecha_vencimiento", "fecha inválida, use AAAA-MM-DD")
	}
	inv, err := ledger.NewInvoice(ledger.NewInvoiceInput{
		Kind:           in.Type,
		CounterpartyID: in.CounterpartyID,
		Number:         in.Number,
		IssueDate:      *issue,
		DueDate:        due,
		Amount:         in.Amount,
		Status:         in.Status,
		Description:    in.Description,
		CreatedBy:      actor.UserID,
		Now:            uc.now(),
	})
	if err != nil {
		return nil, err
	}
	inv.ID = uuid.New().String()

	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		cp, err := uc.counterpartyFor(ctx, repos, inv.Kind, inv.CounterpartyID)
		if err != nil {
			return err
		}
		inv.CounterpartyName = cp.Name
		return repos.Invoices.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("type", inv.Kind).Str("monto", inv.Amount.String()).
		Str("actor", actor.UserID).Msg("factura registrada")
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

// UpdateInvoice edita la factura. Si cambia el monto, el saldo se recalcula contra los abonos
// existentes; si no pudieron leerse, la respuesta lleva una advertencia.
func (uc *UseCase) UpdateInvoice(ctx context.Context, actor dto.Actor, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceMutationResponse, error) {
	release, err := uc.locker.Acquire(ctx, ports.InvoiceLockKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		inv     *entity.Invoice
		warning *reconciliation.ReconciliationWarning
	)
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		inv, err = repos.Invoices.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.NotFound("factura", id)
		}
		if err := uc.applyInvoiceChanges(ctx, repos, inv, in); err != nil {
			return err
		}
		if in.Amount != nil {
			amount, err := ledger.ValidateAmount(*in.Amount)
			if err != nil {
				return err
			}
			if !amount.Equal(inv.Amount) {
				// Los abonos se consultan fuera de la tx: no pueden insertarse otros mientras se tiene la fila.
				res := uc.coordinator.RecomputeInvoice(ctx, uc.repos.Payments, inv, amount)
				inv.Amount = amount
				inv.Balance = res.Value
				warning = res.Warning
			}
		}
		inv.UpdatedAt = uc.now()
		return repos.Invoices.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	ev := uc.log.Info()
	if warning != nil {
		ev = uc.log.Warn().Str("warning", warning.Code)
	}
	ev.Str("invoice_id", inv.ID).Str("monto", inv.Amount.String()).Str("saldo", inv.Balance.String()).
		Str("actor", actor.UserID).Msg("factura actualizada")

	return &dto.InvoiceMutationResponse{Invoice: toInvoiceResponse(inv), Warning: toWarningResponse(warning)}, nil
}

func (uc *UseCase) applyInvoiceChanges(ctx context.Context, repos repository.Repositories, inv *entity.Invoice, in dto.UpdateInvoiceRequest) error {
	if in.CounterpartyID != nil && *in.CounterpartyID != inv.CounterpartyID {
		cp, err := uc.counterpartyFor(ctx, repos, inv.Kind, *in.CounterpartyID)
		if err != nil {
			return err
		}
		inv.CounterpartyID = cp.ID
		inv.CounterpartyName = cp.Name
	}
	if in.Number != nil {
		n := strings.TrimSpace(*in.Number)
		if n == "" {
			return domain.Invalid("numero_factura", "el número de factura es requerido")
		}
		inv.Number = n
	}
	if in.IssueDate != nil {
		d, err := dto.ParseDate(*in.IssueDate)
		if err != nil || d == nil {
			return domain.Invalid("fecha_emision", "fecha inválida, use AAAA-MM-DD")
		}
		inv.IssueDate = *d
	}
	if in.DueDate != nil {
		d, err := dto.ParseDate(*in.DueDate)
		if err != nil {
			return domain.Invalid("fecha_vencimiento", "fecha inválida, use AAAA-MM-DD")
		}
		inv.DueDate = d
	}
	if inv.DueDate != nil && inv.DueDate.Before(inv.IssueDate) {
		return domain.Invalid("fecha_vencimiento", "la fecha de vencimiento no puede ser anterior a la emisión")
	}
	if in.Status != nil {
		inv.Status = strings.TrimSpace(*in.Status)
	}
	if in.Description != nil {
		inv.Description = *in.Description
	}
	return nil
}

// ApplyPayment registra un abono y descuenta el saldo en una única transacción.
func (uc *UseCase) ApplyPayment(ctx context.Context, actor dto.Actor, in dto.CreatePaymentRequest) (*dto.PaymentResultResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.Invalid("fecha", "fecha inválida, use AAAA-MM-DD")
	}
	if strings.TrimSpace(in.InvoiceID) == "" {
		return nil, domain.Invalid("invoice_id", "la factura es requerida")
	}
	release, err := uc.locker.Acquire(ctx, ports.InvoiceLockKey(in.InvoiceID))
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		inv     *entity.Invoice
		payment *entity.Payment
	)
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		inv, err = repos.Invoices.GetForUpdate(ctx, in.InvoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.NotFound("factura", in.InvoiceID)
		}
		input := ledger.PaymentInput{
			Amount:         in.Amount,
			Method:         in.Method,
			Reference:      in.Reference,
			RecordedBy:     actor.UserID,
			RecordedByName: actor.Name,
			Now:            uc.now(),
		}
		if date != nil {
			input.Date = *date
		}
		payment, err = ledger.ApplyPayment(inv, input)
		if err != nil {
			return err
		}
		payment.ID = uuid.New().String()
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}
		return repos.Invoices.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	uc.log.WithActor(actor.UserID).Info().Str("invoice_id", inv.ID).Str("payment_id", payment.ID).Str("monto", payment.Amount.String()).
		Str("saldo", inv.Balance.String()).Msg("abono registrado")
	return &dto.PaymentResultResponse{Payment: toPaymentResponse(payment), Invoice: toInvoiceResponse(inv)}, nil
}

// GetInvoice obtiene una factura por ID.
func (uc *UseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repos.Invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NotFound("factura", id)
	}
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

// ListInvoices lista facturas con filtros por tipo y contraparte.
func (uc *UseCase) ListInvoices(ctx context.Context, in dto.InvoiceFilterRequest) (*dto.InvoiceListResponse, error) {
	in.DefaultPage()
	filter := repository.InvoiceFilter{
		Kind:           in.Type,
		CounterpartyID: in.CounterpartyID,
		OnlyPending:    in.OnlyPending,
		Limit:          in.Limit,
		Offset:         in.Offset,
	}
	list, err := uc.repos.Invoices.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repos.Invoices.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// ListPayments lista los abonos de una factura en orden cronológico.
func (uc *UseCase) ListPayments(ctx context.Context, invoiceID string) ([]dto.PaymentResponse, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return nil, domain.Invalid("invoice_id", "la factura es requerida")
	}
	inv, err := uc.repos.Invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NotFound("factura", invoiceID)
	}
	list, err := uc.repos.Payments.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// DeleteInvoice elimina una factura sin abonos. Con abonos registrados devuelve ErrInvoiceHasPayments.
func (uc *UseCase) DeleteInvoice(ctx context.Context, actor dto.Actor, id string) error {
	release, err := uc.locker.Acquire(ctx, ports.InvoiceLockKey(id))
	if err != nil {
		return err
	}
	defer release()

	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		inv, err := repos.Invoices.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.NotFound("factura", id)
		}
		n, err := repos.Payments.CountByInvoice(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("factura %s con %d abonos: %w", id, n, domain.ErrInvoiceHasPayments)
		}
		return repos.Invoices.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.WithActor(actor.UserID).Info().Str("invoice_id", id).Msg("factura eliminada")
	return nil
}

// VerifyInvoice compara el saldo almacenado con monto - Σ abonos.
func (uc *UseCase) VerifyInvoice(ctx context.Context, id string) (*dto.BalanceCheckResponse, error) {
	inv, err := uc.repos.Invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NotFound("factura", id)
	}
	payments, err := uc.repos.Payments.ListByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toBalanceCheckResponse(ledger.CheckBalance(inv, payments))
	return &resp, nil
}

// VerifyAll revisa todas las facturas y devuelve las inconsistentes.
func (uc *UseCase) VerifyAll(ctx context.Context) (*dto.VerificationReport, error) {
	list, err := uc.repos.Invoices.List(ctx, repository.InvoiceFilter{})
	if err != nil {
		return nil, err
	}
	report := &dto.VerificationReport{Checked: len(list), Inconsistent: []dto.BalanceCheckResponse{}}
	for _, inv := range list {
		payments, err := uc.repos.Payments.ListByInvoice(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		check := ledger.CheckBalance(inv, payments)
		if !check.Consistent() {
			uc.log.Warn().Str("invoice_id", inv.ID).Strs("issues", check.Issues).Msg("saldo inconsistente")
			report.Inconsistent = append(report.Inconsistent, toBalanceCheckResponse(check))
		}
	}
	return report, nil
}

func (uc *UseCase) counterpartyFor(ctx context.Context, repos repository.Repositories, invoiceKind, id string) (*entity.Counterparty, error) {
	cp, err := repos.Counterparties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, domain.NotFound("contraparte", id)
	}
	want, _ := entity.CounterpartyKindFor(invoiceKind)
	if cp.Kind != want {
		return nil, domain.Invalid("counterparty_id", "la contraparte %s no es un %s", id, want)
	}
	return cp, nil
}
