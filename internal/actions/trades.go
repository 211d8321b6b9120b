package actions

import (
	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/reports"
	"github.com/ibstat/cli/internal/ui"
	"github.com/ibstat/cli/internal/ui/style"
)

// TradesList handles "trades list [symbol:<sym>]".
func (c *Console) TradesList(args string) error {
	symbol, bySymbol, err := dispatchers.ResolveArgument("symbol", args)
	if err != nil {
		return err
	}
	t, err := typed[*reports.Trades](c, reports.TokenTrades)
	if err != nil {
		return err
	}

	rows := t.Executions()
	if bySymbol {
		rows = t.ForSymbol(symbol)
	}
	c.table(t.Columns(), rows, ui.TableOptions{})
	return nil
}

// TradesSymbols handles "trades symbols".
func (c *Console) TradesSymbols(string) error {
	t, err := typed[*reports.Trades](c, reports.TokenTrades)
	if err != nil {
		return err
	}
	c.symbols(t.Symbols())
	return nil
}

// TradesPnL handles "trades pnl": realized P/L per symbol.
func (c *Console) TradesPnL(string) error {
	t, err := typed[*reports.Trades](c, reports.TokenTrades)
	if err != nil {
		return err
	}
	totals, err := t.RealizedPnL()
	if err != nil {
		return err
	}
	c.totals(totals, reports.ColSymbol, reports.ColRealizedPnL)
	return nil
}

func (c *Console) symbols(list []string) {
	if len(list) == 0 {
		c.deps.printf("%s\n", ui.NoData)
		return
	}
	for _, s := range list {
		c.deps.printf("%s\n", s)
	}
}

// totals prints one row per key plus an overall sum when there is more than
// one key.
func (c *Console) totals(t reports.Totals, keyColumn, valueColumn string) {
	rows := t.Rows(keyColumn, valueColumn)
	if len(t) > 1 {
		var sum float64
		for _, v := range t {
			sum += v
		}
		rows = append(rows, reports.Row{keyColumn: "Total", valueColumn: style.Amount(reports.FormatAmount(sum), sum)})
	}
	c.table([]string{keyColumn, valueColumn}, rows, ui.TableOptions{})
}
