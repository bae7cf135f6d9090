package reports

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Verduleria-api/internal/domain/money"
)

// Formatter formatea montos según la configuración regional de los reportes.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter crea un formateador para locale (BCP 47, p. ej. "es-CR") y el símbolo de moneda.
// Un locale inválido usa español genérico.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Money devuelve el monto con separadores regionales y 2 decimales, precedido del símbolo.
func (f *Formatter) Money(d decimal.Decimal) string {
	v, _ := money.RoundMoney(d).Float64()
	return f.symbol + f.printer.Sprint(number.Decimal(v, number.Scale(int(money.MoneyScale))))
}
