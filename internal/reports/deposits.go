package reports

// TokenDeposits is the category token of the cash transfers table.
const TokenDeposits = "Deposits & Withdrawals"

// Deposits lists deposits (positive amounts) and withdrawals (negative).
type Deposits struct {
	Base
}

// NewDeposits is the Builder for TokenDeposits.
func NewDeposits(token string, rows []Row, columns []string) (Report, error) {
	return &Deposits{Base: NewBase(token, rows, columns)}, nil
}

// Transfers returns the transfer rows, excluding totals.
func (d *Deposits) Transfers() []Row {
	return withoutTotals(d.Data())
}

// Net sums deposits minus withdrawals per currency.
func (d *Deposits) Net() (Totals, error) {
	return sumBy(d.Transfers(), ColCurrency, ColAmount)
}
