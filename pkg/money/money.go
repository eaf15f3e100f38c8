// Package money formatea importes monetarios para la capa de presentación.
// El redondeo a dos decimales ocurre únicamente aquí, al formatear; los
// cálculos de los servicios conservan la precisión completa de decimal.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea importes con símbolo y separadores según el locale.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter construye el formateador. Un locale inválido cae a en-US.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format devuelve el importe con símbolo antepuesto y dos decimales,
// ej. "₹1,234.50".
func (f *Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	return f.printer.Sprintf("%s%v", f.symbol,
		number.Decimal(v, number.Scale(2)))
}

// FormatPlain devuelve el importe sin símbolo, con dos decimales y sin
// separadores de miles. Para archivos y asientos.
func FormatPlain(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}
