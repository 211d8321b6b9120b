package reports

// TokenOpenPositions is the category token of the open positions table.
const TokenOpenPositions = "Open Positions"

// OpenPositions lists the positions held at the end of the period.
type OpenPositions struct {
	Base
}

// NewOpenPositions is the Builder for TokenOpenPositions.
func NewOpenPositions(token string, rows []Row, columns []string) (Report, error) {
	return &OpenPositions{Base: NewBase(token, rows, columns)}, nil
}

// Holdings returns one row per position. When the table carries a
// DataDiscriminator column only "Summary" rows are kept, lot rows repeat
// the same position.
func (p *OpenPositions) Holdings() []Row {
	data := p.Data()
	if !p.HasColumn(ColDataDiscriminator) {
		return data
	}
	var out []Row
	for _, r := range data {
		if r[ColDataDiscriminator] == "Summary" {
			out = append(out, r)
		}
	}
	return out
}

// Symbols returns the held symbols in first-seen order.
func (p *OpenPositions) Symbols() []string {
	return symbolsOf(p.Holdings())
}

// ForSymbol returns the holdings of symbol.
func (p *OpenPositions) ForSymbol(symbol string) []Row {
	var out []Row
	for _, r := range p.Holdings() {
		if r[ColSymbol] == symbol {
			out = append(out, r)
		}
	}
	return out
}

// UnrealizedPnL sums the unrealized P/L per symbol.
func (p *OpenPositions) UnrealizedPnL() (Totals, error) {
	return sumBy(p.Holdings(), ColSymbol, ColUnrealizedPnL)
}
