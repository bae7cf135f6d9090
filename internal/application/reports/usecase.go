// Package reports agrega saldos e inventario para presentación. No modifica datos ni recalcula saldos.
package reports

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/money"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

// UseCase reportes de cartera e inventario.
type UseCase struct {
	invoices  repository.InvoiceRepository
	inventory repository.InventoryRepository
	format    *Formatter
}

// NewUseCase construye el caso de uso.
func NewUseCase(invoices repository.InvoiceRepository, inventory repository.InventoryRepository, format *Formatter) *UseCase {
	if format == nil {
		format = NewFormatter("es-CR", "₡")
	}
	return &UseCase{invoices: invoices, inventory: inventory, format: format}
}

// BalanceSummary saldo pendiente por contraparte (solo saldo > 0), total general e indicadores.
func (uc *UseCase) BalanceSummary(ctx context.Context, kind string) (*dto.BalanceSummaryResponse, error) {
	if _, ok := entity.CounterpartyKindFor(kind); !ok {
		return nil, domain.Invalid("type", "tipo de factura inválido %q (cobrar|pagar)", kind)
	}
	list, err := uc.invoices.List(ctx, repository.InvoiceFilter{Kind: kind})
	if err != nil {
		return nil, err
	}

	resp := &dto.BalanceSummaryResponse{Type: kind, Counterparties: []dto.CounterpartyBalance{}}
	byID := map[string]*dto.CounterpartyBalance{}
	var order []string
	total := decimal.Zero
	for _, inv := range list {
		resp.Indicators.Total++
		if !inv.Balance.IsPositive() {
			resp.Indicators.Pagadas++
			continue
		}
		resp.Indicators.ConDeuda++
		total = total.Add(inv.Balance)
		cb, ok := byID[inv.CounterpartyID]
		if !ok {
			cb = &dto.CounterpartyBalance{CounterpartyID: inv.CounterpartyID, CounterpartyName: inv.CounterpartyName}
			byID[inv.CounterpartyID] = cb
			order = append(order, inv.CounterpartyID)
		}
		cb.Invoices++
		cb.Outstanding = cb.Outstanding.Add(inv.Balance)
	}
	for _, id := range order {
		cb := byID[id]
		cb.Outstanding = money.RoundMoney(cb.Outstanding)
		cb.Formatted = uc.format.Money(cb.Outstanding)
		resp.Counterparties = append(resp.Counterparties, *cb)
	}
	sort.SliceStable(resp.Counterparties, func(i, j int) bool {
		a, b := resp.Counterparties[i], resp.Counterparties[j]
		if !a.Outstanding.Equal(b.Outstanding) {
			return a.Outstanding.GreaterThan(b.Outstanding)
		}
		return a.CounterpartyName < b.CounterpartyName
	})
	resp.Total = money.RoundMoney(total)
	resp.TotalFormatted = uc.format.Money(resp.Total)
	return resp, nil
}

// InventorySummary cantidad de registros por estado y valorización del stock.
func (uc *UseCase) InventorySummary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	list, err := uc.inventory.List(ctx, repository.InventoryFilter{})
	if err != nil {
		return nil, err
	}
	resp := &dto.InventorySummaryResponse{Records: len(list)}
	valuation := decimal.Zero
	for _, rec := range list {
		switch rec.Status {
		case entity.StockStatusAgotado:
			resp.Agotado++
		case entity.StockStatusBajo:
			resp.StockBajo++
		default:
			resp.Disponible++
		}
		valuation = valuation.Add(rec.Valuation())
	}
	resp.Valuation = money.RoundMoney(valuation)
	resp.ValuationFormatted = uc.format.Money(resp.Valuation)
	return resp, nil
}
