// Package cli declares the console's command tree.
package cli

import (
	"io"

	"github.com/ibstat/cli/internal/actions"
	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/domain"
)

// RootToken names the root processor.
const RootToken = "ibstat"

// BuildTree wires the handlers of c into the processor tree. out receives
// help listings; logger records dispatch outcomes.
func BuildTree(c *actions.Console, out io.Writer, logger domain.Logger) *dispatchers.Processor {
	root := dispatchers.Root(dispatchers.RootSpec{
		Token:   RootToken,
		Summary: "IB activity statement analyzer",
		Out:     out,
		Logger:  logger,
	})

	root.
		Handle("load", "Load a statement: load file:<path>", c.Load).
		Handle("reports", "List the reports of the loaded statement", c.Reports).
		Handle("sections", "List every statement category and whether it was parsed", c.Sections).
		Handle("show", "Print a report: show report:<name> [columns:a,b] [limit:n]", c.Show).
		Handle("find", "Find report rows: find report:<name> column:<col> value:<v>", c.Find).
		Handle("export", "Write a report to Excel: export report:<name> file:<path.xlsx> [columns:a,b]", c.Export).
		Handle("history", "List the statements loaded in this session", c.History).
		Handle("config", "Show the configuration: config [key:<name>]", c.Config).
		Handle("logs", "Show the last log lines: logs [limit:n]", c.Logs).
		Handle("version", "Show the version", c.ShowVersion)

	dispatchers.Group(dispatchers.GroupSpec{Token: "trades", Parent: root, Summary: "Executed trades"}).
		Handle("list", "List executions: list [symbol:<sym>]", c.TradesList).
		Handle("symbols", "List traded symbols", c.TradesSymbols).
		Handle("pnl", "Realized P/L per symbol", c.TradesPnL)

	dispatchers.Group(dispatchers.GroupSpec{Token: "mtm", Parent: root, Summary: "Mark-to-market performance"}).
		Handle("list", "List the summary: list [symbol:<sym>]", c.MTMList).
		Handle("total", "Total mark-to-market P/L per symbol", c.MTMTotal)

	dispatchers.Group(dispatchers.GroupSpec{Token: "dividends", Parent: root, Summary: "Dividend payments"}).
		Handle("list", "List payments", c.DividendsList).
		Handle("total", "Payments per currency", c.DividendsTotal)

	dispatchers.Group(dispatchers.GroupSpec{Token: "deposits", Parent: root, Summary: "Deposits and withdrawals"}).
		Handle("list", "List transfers", c.DepositsList).
		Handle("net", "Net transfers per currency", c.DepositsNet)

	dispatchers.Group(dispatchers.GroupSpec{Token: "positions", Parent: root, Summary: "Open positions"}).
		Handle("list", "List positions: list [symbol:<sym>]", c.PositionsList).
		Handle("pnl", "Unrealized P/L per symbol", c.PositionsPnL)

	return root
}
