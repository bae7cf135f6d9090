package accounts

import (
	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/application/reconciliation"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/ledger"
)

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:               inv.ID,
		Type:             inv.Kind,
		CounterpartyID:   inv.CounterpartyID,
		CounterpartyName: inv.CounterpartyName,
		Number:           inv.Number,
		IssueDate:        dto.FormatDate(&inv.IssueDate),
		DueDate:          dto.FormatDate(inv.DueDate),
		Amount:           inv.Amount,
		Balance:          inv.Balance,
		Status:           inv.DisplayStatus(),
		Description:      inv.Description,
		Version:          inv.Version,
		CreatedBy:        inv.CreatedBy,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:             p.ID,
		InvoiceID:      p.InvoiceID,
		Amount:         p.Amount,
		Date:           dto.FormatDate(&p.Date),
		Method:         p.Method,
		Reference:      p.Reference,
		RecordedBy:     p.RecordedBy,
		RecordedByName: p.RecordedByName,
		CreatedAt:      p.CreatedAt,
	}
}

func toBalanceCheckResponse(c ledger.BalanceCheck) dto.BalanceCheckResponse {
	return dto.BalanceCheckResponse{
		InvoiceID:       c.InvoiceID,
		Amount:          c.Amount,
		StoredBalance:   c.StoredBalance,
		ExpectedBalance: c.ExpectedBalance,
		PaymentsTotal:   c.PaymentsTotal,
		PaymentCount:    c.PaymentCount,
		Consistent:      c.Consistent(),
		Issues:          c.Issues,
	}
}

func toWarningResponse(w *reconciliation.ReconciliationWarning) *dto.WarningResponse {
	if w == nil {
		return nil
	}
	return &dto.WarningResponse{Code: w.Code, Message: w.Message, EntityID: w.EntityID}
}
