package reports

import "strings"

// TokenDividends is the category token of the dividends table.
const TokenDividends = "Dividends"

// Dividends lists dividend payments.
type Dividends struct {
	Base
}

// NewDividends is the Builder for TokenDividends.
func NewDividends(token string, rows []Row, columns []string) (Report, error) {
	return &Dividends{Base: NewBase(token, rows, columns)}, nil
}

// Payments returns the dividend rows, excluding the per-currency totals.
func (d *Dividends) Payments() []Row {
	return withoutTotals(d.Data())
}

// Total sums the payments per currency.
func (d *Dividends) Total() (Totals, error) {
	return sumBy(d.Payments(), ColCurrency, ColAmount)
}

// withoutTotals drops the "Total" and "Total in USD" lines that cash tables
// carry as data rows.
func withoutTotals(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if strings.HasPrefix(r[ColCurrency], "Total") {
			continue
		}
		out = append(out, r)
	}
	return out
}
