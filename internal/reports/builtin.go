package reports

// Builtin returns the report types shipped with the binary.
func Builtin() []Entry {
	return []Entry{
		{Token: TokenTrades, Build: NewTrades},
		{Token: TokenMarkToMarket, Build: NewMarkToMarket},
		{Token: TokenDividends, Build: NewDividends},
		{Token: TokenDeposits, Build: NewDeposits},
		{Token: TokenOpenPositions, Build: NewOpenPositions},
	}
}
