package reports

// TokenTrades is the category token of the trades table.
const TokenTrades = "Trades"

// Trades is the executed trades table.
type Trades struct {
	Base
}

// NewTrades is the Builder for TokenTrades.
func NewTrades(token string, rows []Row, columns []string) (Report, error) {
	return &Trades{Base: NewBase(token, rows, columns)}, nil
}

// Executions returns the order rows. Statements also list closed lots and
// subtotals under the same header; when the table carries a
// DataDiscriminator column only "Order" rows are executions.
func (t *Trades) Executions() []Row {
	data := t.Data()
	if !t.HasColumn(ColDataDiscriminator) {
		return data
	}
	var out []Row
	for _, r := range data {
		if r[ColDataDiscriminator] == "Order" {
			out = append(out, r)
		}
	}
	return out
}

// Symbols returns the traded symbols in first-seen order.
func (t *Trades) Symbols() []string {
	return symbolsOf(t.Executions())
}

// ForSymbol returns the executions of symbol.
func (t *Trades) ForSymbol(symbol string) []Row {
	var out []Row
	for _, r := range t.Executions() {
		if r[ColSymbol] == symbol {
			out = append(out, r)
		}
	}
	return out
}

// RealizedPnL sums the realized profit and loss per symbol.
func (t *Trades) RealizedPnL() (Totals, error) {
	return sumBy(t.Executions(), ColSymbol, ColRealizedPnL)
}
