package actions

import (
	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/reports"
	"github.com/ibstat/cli/internal/ui"
)

// MTMList handles "mtm list [symbol:<sym>]".
func (c *Console) MTMList(args string) error {
	symbol, bySymbol, err := dispatchers.ResolveArgument("symbol", args)
	if err != nil {
		return err
	}
	m, err := typed[*reports.MarkToMarket](c, reports.TokenMarkToMarket)
	if err != nil {
		return err
	}

	rows := m.Data()
	if bySymbol {
		rows = m.ForSymbol(symbol)
	}
	c.table(m.Columns(), rows, ui.TableOptions{})
	return nil
}

// MTMTotal handles "mtm total": total mark-to-market P/L per symbol.
func (c *Console) MTMTotal(string) error {
	m, err := typed[*reports.MarkToMarket](c, reports.TokenMarkToMarket)
	if err != nil {
		return err
	}
	totals, err := m.Total()
	if err != nil {
		return err
	}
	c.totals(totals, reports.ColSymbol, reports.ColMTMTotal)
	return nil
}

// DividendsList handles "dividends list".
func (c *Console) DividendsList(string) error {
	d, err := typed[*reports.Dividends](c, reports.TokenDividends)
	if err != nil {
		return err
	}
	c.table(d.Columns(), d.Payments(), ui.TableOptions{})
	return nil
}

// DividendsTotal handles "dividends total": payments per currency.
func (c *Console) DividendsTotal(string) error {
	d, err := typed[*reports.Dividends](c, reports.TokenDividends)
	if err != nil {
		return err
	}
	totals, err := d.Total()
	if err != nil {
		return err
	}
	c.table([]string{reports.ColCurrency, reports.ColAmount},
		totals.Rows(reports.ColCurrency, reports.ColAmount), ui.TableOptions{})
	return nil
}

// DepositsList handles "deposits list".
func (c *Console) DepositsList(string) error {
	d, err := typed[*reports.Deposits](c, reports.TokenDeposits)
	if err != nil {
		return err
	}
	c.table(d.Columns(), d.Transfers(), ui.TableOptions{})
	return nil
}

// DepositsNet handles "deposits net": deposits minus withdrawals per currency.
func (c *Console) DepositsNet(string) error {
	d, err := typed[*reports.Deposits](c, reports.TokenDeposits)
	if err != nil {
		return err
	}
	net, err := d.Net()
	if err != nil {
		return err
	}
	c.table([]string{reports.ColCurrency, "Net"}, net.Rows(reports.ColCurrency, "Net"), ui.TableOptions{})
	return nil
}

// PositionsList handles "positions list [symbol:<sym>]".
func (c *Console) PositionsList(args string) error {
	symbol, bySymbol, err := dispatchers.ResolveArgument("symbol", args)
	if err != nil {
		return err
	}
	p, err := typed[*reports.OpenPositions](c, reports.TokenOpenPositions)
	if err != nil {
		return err
	}

	rows := p.Holdings()
	if bySymbol {
		rows = p.ForSymbol(symbol)
	}
	c.table(p.Columns(), rows, ui.TableOptions{})
	return nil
}

// PositionsPnL handles "positions pnl": unrealized P/L per symbol.
func (c *Console) PositionsPnL(string) error {
	p, err := typed[*reports.OpenPositions](c, reports.TokenOpenPositions)
	if err != nil {
		return err
	}
	totals, err := p.UnrealizedPnL()
	if err != nil {
		return err
	}
	c.totals(totals, reports.ColSymbol, reports.ColUnrealizedPnL)
	return nil
}
