package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultSymbol = "R$"

var hundred = decimal.NewFromInt(100)

// Formatter renders amounts the BRL way: "." groups thousands and "," separates
// the two decimal places. It is built once from configuration and handed to
// whoever needs to render money.
type Formatter struct {
	Symbol string
}

func NewFormatter(symbol string) Formatter {
	return Formatter{Symbol: symbol}
}

// BRL returns the formatter used by default ("R$ 1.234,56").
func BRL() Formatter {
	return Formatter{Symbol: DefaultSymbol}
}

// Format renders value with the currency symbol, e.g. "R$ 1.234,56".
func (f Formatter) Format(value decimal.Decimal) string {
	amount := FormatAmount(value.Abs())
	if f.Symbol != "" {
		amount = f.Symbol + " " + amount
	}
	if value.Round(2).IsNegative() {
		return "-" + amount
	}
	return amount
}

// FormatAmount renders value without symbol, e.g. "1.234,56".
func FormatAmount(value decimal.Decimal) string {
	sign := ""
	if value.Round(2).IsNegative() {
		sign = "-"
		value = value.Abs()
	}

	fixed := value.StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	return sign + b.String() + "," + fraction
}

// Parse converts a BRL string ("1.234,56", "R$ 10,00") into a decimal.
// It does not check the shape of the input; see validation.ParseBRL.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, DefaultSymbol))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse brl amount: %w", err)
	}
	return value, nil
}

// Percent returns round(fraction / total * 100, 2), or zero when total is zero.
func Percent(fraction, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return fraction.Div(total).Mul(hundred).Round(2)
}
