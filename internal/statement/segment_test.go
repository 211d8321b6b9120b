package statement

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Section
	}{
		{
			name: "groups by first comma in first-seen order",
			raw:  "Trades,Symbol,Qty\nMTM,Symbol,PnL\nTrades,AAPL,10\nMTM,AAPL,100\n",
			want: []Section{
				{Token: "Trades", Lines: []string{"Symbol,Qty", "AAPL,10"}},
				{Token: "MTM", Lines: []string{"Symbol,PnL", "AAPL,100"}},
			},
		},
		{
			name: "blank lines and CRLF",
			raw:  "\r\nTrades,Symbol\r\n\r\n  \nTrades,AAPL\r\n",
			want: []Section{
				{Token: "Trades", Lines: []string{"Symbol", "AAPL"}},
			},
		},
		{
			name: "rest keeps embedded commas and quotes",
			raw:  `Trades,Data,"2024-03-01, 10:00:00",1`,
			want: []Section{
				{Token: "Trades", Lines: []string{`Data,"2024-03-01, 10:00:00",1`}},
			},
		},
		{
			name: "category is trimmed",
			raw:  " Dividends ,Currency,Amount",
			want: []Section{
				{Token: "Dividends", Lines: []string{"Currency,Amount"}},
			},
		},
		{
			name: "line without comma goes to empty category",
			raw:  "preamble text\nTrades,Symbol",
			want: []Section{
				{Token: "", Lines: []string{"preamble text"}},
				{Token: "Trades", Lines: []string{"Symbol"}},
			},
		},
		{
			name: "byte order mark",
			raw:  "\ufeffStatement,Header,Field Name,Field Value",
			want: []Section{
				{Token: "Statement", Lines: []string{"Header,Field Name,Field Value"}},
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Segment(tt.raw))
		})
	}
}

func TestSection_Text(t *testing.T) {
	s := Section{Token: "Trades", Lines: []string{"Symbol,Qty", "AAPL,10"}}
	require.Equal(t, "Symbol,Qty\nAAPL,10", s.Text())
}
