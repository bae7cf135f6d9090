package dto

import "github.com/shopspring/decimal"

// CounterpartyBalance saldo pendiente agregado por contraparte.
type CounterpartyBalance struct {
	CounterpartyID   string          `json:"counterparty_id"`
	CounterpartyName string          `json:"counterparty_name"`
	Invoices         int             `json:"facturas"`
	Outstanding      decimal.Decimal `json:"saldo"`
	Formatted        string          `json:"saldo_formateado"`
}

// BalanceIndicators indicadores de estado de cartera.
type BalanceIndicators struct {
	Total    int `json:"total"`
	Pagadas  int `json:"pagadas"`
	ConDeuda int `json:"con_deuda"`
}

// BalanceSummaryResponse resumen de saldos para GET /api/reports/balances.
type BalanceSummaryResponse struct {
	Type           string                `json:"type"`
	Counterparties []CounterpartyBalance `json:"contrapartes"`
	Total          decimal.Decimal       `json:"total"`
	TotalFormatted string                `json:"total_formateado"`
	Indicators     BalanceIndicators     `json:"indicadores"`
}

// InventorySummaryResponse resumen de inventario para GET /api/reports/inventory.
type InventorySummaryResponse struct {
	Records            int             `json:"registros"`
	Disponible         int             `json:"disponible"`
	StockBajo          int             `json:"stock_bajo"`
	Agotado            int             `json:"agotado"`
	Valuation          decimal.Decimal `json:"valorizacion"`
	ValuationFormatted string          `json:"valorizacion_formateada"`
}
