package statement

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibstat/cli/internal/log"
	"github.com/ibstat/cli/internal/reports"
)

const twoTables = "Trades,Symbol,Qty\nTrades,AAPL,10\nMTM,Symbol,PnL\nMTM,AAPL,100\n"

func newRegistry(t *testing.T, tokens ...string) *reports.Registry {
	t.Helper()
	entries := make([]reports.Entry, len(tokens))
	for i, tok := range tokens {
		entries[i] = reports.Entry{Token: tok, Build: reports.NewGeneric}
	}
	reg, err := reports.Discover(nil, entries...)
	require.NoError(t, err)
	return reg
}

func TestParse_BuildsMatchedReports(t *testing.T) {
	p := NewParser(newRegistry(t, "Trades", "MTM"), nil)

	got := p.Parse(twoTables)
	require.Len(t, got, 2)

	require.Equal(t, "Trades", got[0].Token())
	require.Equal(t, []reports.Row{{"Symbol": "AAPL", "Qty": "10"}}, got[0].Rows())
	require.Equal(t, "MTM", got[1].Token())
	require.Equal(t, []reports.Row{{"Symbol": "AAPL", "PnL": "100"}}, got[1].Rows())
}

func TestParse_UnmatchedCategoryIsDropped(t *testing.T) {
	p := NewParser(newRegistry(t, "Trades"), nil)

	got := p.Parse(twoTables)
	require.Len(t, got, 1)
	require.Equal(t, "Trades", got[0].Token())
}

func TestParse_MalformedCategoryIsDropped(t *testing.T) {
	p := NewParser(newRegistry(t, "Trades", "Junk"), nil)

	got := p.Parse("Junk,not,,a,,valid,,csv\"\n" + twoTables)
	require.Equal(t, []string{"Trades"}, reports.Tokens(got))

	none := p.Parse("Junk,not,,a,,valid,,csv\"\n")
	require.Empty(t, none)
}

func TestParse_IsDeterministic(t *testing.T) {
	p := NewParser(newRegistry(t, "Trades", "MTM"), nil)

	first := p.Parse(twoTables)
	for i := 0; i < 10; i++ {
		again := p.Parse(twoTables)
		require.Equal(t, reports.Tokens(first), reports.Tokens(again))
		for j := range first {
			require.Equal(t, first[j].Rows(), again[j].Rows())
		}
	}
}

func TestParse_NeverFails(t *testing.T) {
	p := NewParser(newRegistry(t, "Trades"), nil)

	for _, raw := range []string{"", "\n\n", ",,,", `"`, "no commas at all", "Trades"} {
		require.NotPanics(t, func() { p.Parse(raw) })
	}
}

func TestLoad_RecordsOutcomes(t *testing.T) {
	failing := func(string, []reports.Row, []string) (reports.Report, error) {
		return nil, errors.New("bad rows")
	}
	reg, err := reports.Discover(nil,
		reports.Entry{Token: "Trades", Build: reports.NewGeneric},
		reports.Entry{Token: "Fees", Build: failing},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewParser(reg, log.NewWriter(&buf, log.LevelDebug))

	res := p.Load(twoTables + "Junk,\"x\n" + "Fees,Amount\nFees,1\n")
	require.Len(t, res.Reports, 1)
	require.Equal(t, []Outcome{
		{Token: "Trades", Lines: 2, Rows: 1, Status: StatusReport},
		{Token: "MTM", Lines: 2, Rows: 1, Status: StatusUnmatched},
	}, res.Sections[:2])

	junk := res.Sections[2]
	require.Equal(t, "Junk", junk.Token)
	require.Equal(t, StatusMalformed, junk.Status)
	require.Error(t, junk.Err)

	fees := res.Sections[3]
	require.Equal(t, StatusBuildFailed, fees.Status)
	require.EqualError(t, fees.Err, "bad rows")

	require.Len(t, res.Dropped(), 3)
	require.Contains(t, buf.String(), `section "MTM" dropped: no report type`)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(twoTables), 0o644))

	p := NewParser(newRegistry(t, "Trades"), nil)
	res, err := p.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, path, res.Source)
	require.Len(t, res.Reports, 1)

	_, err = p.ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestParse_BuiltinReports(t *testing.T) {
	reg, err := reports.Discover(nil, reports.Builtin()...)
	require.NoError(t, err)

	raw := "" +
		"Statement,Header,Field Name,Field Value\n" +
		"Statement,Data,Period,\"January 1, 2024 - December 31, 2024\"\n" +
		"Trades,Header,DataDiscriminator,Symbol,Quantity,Realized P/L\n" +
		"Trades,Data,Order,AAPL,10,0\n" +
		"Trades,Data,Order,AAPL,-10,\"1,020.5\"\n" +
		"Dividends,Header,Currency,Date,Description,Amount\n" +
		"Dividends,Data,USD,2024-02-15,AAPL Cash Dividend,12.00\n" +
		"Dividends,Data,Total,,,12.00\n"

	got := NewParser(reg, nil).Parse(raw)
	require.Equal(t, []string{"Trades", "Dividends"}, reports.Tokens(got))

	tr, ok := got[0].(*reports.Trades)
	require.True(t, ok)
	pnl, err := tr.RealizedPnL()
	require.NoError(t, err)
	require.InDelta(t, 1020.5, pnl["AAPL"], 0.001)

	div, ok := got[1].(*reports.Dividends)
	require.True(t, ok)
	total, err := div.Total()
	require.NoError(t, err)
	require.Equal(t, reports.Totals{"USD": 12}, total)
}
