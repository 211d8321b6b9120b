package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommandInfo(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    CommandInfo
		wantStr string
	}{
		{
			name: "empty line has no command",
			raw:  "",
			want: CommandInfo{},
		},
		{
			name:    "command only",
			raw:     "help",
			want:    CommandInfo{Command: "help", HasCommand: true},
			wantStr: "help",
		},
		{
			name:    "command with arguments",
			raw:     "trades list symbol:AAPL",
			want:    CommandInfo{Command: "trades", HasCommand: true, ArgsString: "list symbol:AAPL"},
			wantStr: "trades list symbol:AAPL",
		},
		{
			name:    "line is not trimmed",
			raw:     " help",
			want:    CommandInfo{Command: "", HasCommand: true, ArgsString: "help"},
			wantStr: " help",
		},
		{
			name:    "remaining spaces are kept",
			raw:     "show  report:Trades ",
			want:    CommandInfo{Command: "show", HasCommand: true, ArgsString: " report:Trades "},
			wantStr: "show  report:Trades ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommandInfo(tt.raw)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantStr, got.String())
		})
	}
}

func TestParseCommandInfo_ChildHopReparsesArgs(t *testing.T) {
	first := ParseCommandInfo("trades list symbol:AAPL")
	second := ParseCommandInfo(first.ArgsString)

	require.Equal(t, "list", second.Command)
	require.Equal(t, "symbol:AAPL", second.ArgsString)

	third := ParseCommandInfo(second.ArgsString)
	require.Equal(t, "symbol:AAPL", third.Command)
	require.Empty(t, third.ArgsString)
}
