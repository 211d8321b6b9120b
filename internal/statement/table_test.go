package statement

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibstat/cli/internal/reports"
)

func TestParseTable(t *testing.T) {
	columns, rows, err := ParseTable([]string{
		"Symbol,Date/Time,Qty",
		`AAPL,"2024-03-01, 10:00:00",10`,
		"",
		"MSFT,2024-03-02,-5",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Symbol", "Date/Time", "Qty"}, columns)
	require.Equal(t, []reports.Row{
		{"Symbol": "AAPL", "Date/Time": "2024-03-01, 10:00:00", "Qty": "10"},
		{"Symbol": "MSFT", "Date/Time": "2024-03-02", "Qty": "-5"},
	}, rows)
}

func TestParseTable_HeaderOnly(t *testing.T) {
	columns, rows, err := ParseTable([]string{"Symbol,Qty"})
	require.NoError(t, err)
	require.Equal(t, []string{"Symbol", "Qty"}, columns)
	require.Empty(t, rows)
}

func TestParseTable_Empty(t *testing.T) {
	columns, rows, err := ParseTable(nil)
	require.NoError(t, err)
	require.Nil(t, columns)
	require.Nil(t, rows)
}

func TestParseTable_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"bare quote", []string{`not,,a,,valid,,csv"`}},
		{"too many fields", []string{"Symbol,Qty", "AAPL,10,extra"}},
		{"too few fields", []string{"Symbol,Qty", "AAPL"}},
		{"unterminated quote", []string{"Symbol,Qty", `"AAPL,10`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTable(tt.lines)
			require.Error(t, err)
		})
	}
}
