package reports

// TokenMarkToMarket is the category token of the mark-to-market summary.
const TokenMarkToMarket = "Mark-to-Market Performance Summary"

// MarkToMarket is the per-symbol mark-to-market performance summary.
type MarkToMarket struct {
	Base
}

// NewMarkToMarket is the Builder for TokenMarkToMarket.
func NewMarkToMarket(token string, rows []Row, columns []string) (Report, error) {
	return &MarkToMarket{Base: NewBase(token, rows, columns)}, nil
}

// positions returns data rows that name a symbol. Summary rows per asset
// category leave Symbol blank.
func (m *MarkToMarket) positions() []Row {
	var out []Row
	for _, r := range m.Data() {
		if r[ColSymbol] != "" {
			out = append(out, r)
		}
	}
	return out
}

// ForSymbol returns the summary rows of symbol.
func (m *MarkToMarket) ForSymbol(symbol string) []Row {
	return m.Where(ColSymbol, symbol)
}

// Total sums the total mark-to-market P/L per symbol.
func (m *MarkToMarket) Total() (Totals, error) {
	return sumBy(m.positions(), ColSymbol, ColMTMTotal)
}
