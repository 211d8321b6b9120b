package dispatchers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibstat/cli/internal/ui/style"
)

func TestHelpText_DeclarationOrder(t *testing.T) {
	style.Init(false)
	root := createTestTree(&callRecorder{}, &bytes.Buffer{})

	want := "" +
		"-- help - Show this list of commands\n" +
		"-- load - Load a statement\n" +
		"-- reports - List loaded reports\n" +
		"-- trades <command> - Trades commands\n" +
		"-- dividends <command> - Dividends commands\n"

	require.Equal(t, want, root.HelpText())
}

func TestHelpText_IsStable(t *testing.T) {
	style.Init(false)
	root := createTestTree(&callRecorder{}, &bytes.Buffer{})

	require.Equal(t, root.HelpText(), root.HelpText())
}

func TestHelpCommand_WritesListing(t *testing.T) {
	style.Init(false)
	var out bytes.Buffer
	root := createTestTree(&callRecorder{}, &out)

	handled, err := root.Dispatch(ParseCommandInfo("trades help"))
	require.NoError(t, err)
	require.True(t, handled)

	want := "" +
		"-- help - Show this list of commands\n" +
		"-- list - List trades\n" +
		"-- pnl - Realized P/L\n" +
		"-- fx <command> - Forex trades\n"
	require.Equal(t, want, out.String())
}

func TestCollectAllCommands(t *testing.T) {
	root := createTestTree(&callRecorder{}, &bytes.Buffer{})

	require.Equal(t, []string{
		"help", "load", "reports",
		"trades help", "trades list", "trades pnl",
		"trades fx help", "trades fx list",
		"dividends help", "dividends total",
	}, CollectAllCommands(root, ""))
}
