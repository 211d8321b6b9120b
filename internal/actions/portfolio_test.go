package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibstat/cli/internal/usage"
)

func TestTrades(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.console.LoadPath("u123.csv"))

	require.NoError(t, h.console.TradesList("symbol:MSFT"))
	require.Contains(t, h.lastPage(), "MSFT")
	require.NotContains(t, h.lastPage(), "AAPL")

	h.out.Reset()
	require.NoError(t, h.console.TradesSymbols(""))
	require.Equal(t, "AAPL\nMSFT\n", h.out.String())

	require.NoError(t, h.console.TradesPnL(""))
	page := h.lastPage()
	require.Contains(t, page, "-20.25")
	require.Contains(t, page, "1,250.50")
	require.Contains(t, page, "1,230.25")

	requireKind(t, h.console.TradesList("symbol"), usage.ErrInvalidArgument)
}

func TestMarkToMarket(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.console.LoadPath("u123.csv"))

	require.NoError(t, h.console.MTMList("symbol:AAPL"))
	require.Contains(t, h.lastPage(), "AAPL")

	require.NoError(t, h.console.MTMTotal(""))
	require.Contains(t, h.lastPage(), "100.00")
}

func TestCashCommands(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.console.LoadPath("u123.csv"))

	require.NoError(t, h.console.DividendsList(""))
	require.Contains(t, h.lastPage(), "AAPL Cash Dividend")
	require.NotContains(t, h.lastPage(), "Total")

	require.NoError(t, h.console.DividendsTotal(""))
	require.Contains(t, h.lastPage(), "12.00")

	require.NoError(t, h.console.DepositsList(""))
	require.Contains(t, h.lastPage(), "Disbursement")

	require.NoError(t, h.console.DepositsNet(""))
	require.Contains(t, h.lastPage(), "7,500.00")
}

func TestPositions(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.console.LoadPath("u123.csv"))

	require.NoError(t, h.console.PositionsList(""))
	require.Contains(t, h.lastPage(), "VOO")

	require.NoError(t, h.console.PositionsList("symbol:AAPL"))
	require.Equal(t, "No data", h.lastPage())

	require.NoError(t, h.console.PositionsPnL(""))
	require.Contains(t, h.lastPage(), "-2.00")
}
