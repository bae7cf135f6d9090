// Package money reúne las utilidades de redondeo y acotamiento para montos y cantidades.
package money

import "github.com/shopspring/decimal"

// Escalas de redondeo: colones con céntimos y cantidades en kg con gramos.
const (
	MoneyScale    int32 = 2
	QuantityScale int32 = 3
)

// RoundMoney redondea un monto a 2 decimales (mitad alejándose de cero).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// RoundQuantity redondea una cantidad a 3 decimales.
func RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityScale)
}

// ClampNonNegative devuelve max(0, d).
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// IsPositive indica si d > 0.
func IsPositive(d decimal.Decimal) bool {
	return d.IsPositive()
}

// Sum suma una lista de valores.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
