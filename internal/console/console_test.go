package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStream_ReadLine(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("help\r\ntrades list\nlast"), &out, "")

	line, err := s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "help", line)

	line, err = s.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "trades list", line)

	line, err = s.ReadLine()
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "last", line)

	line, err = s.ReadLine()
	require.ErrorIs(t, err, io.EOF)
	require.Empty(t, line)
}

func TestStream_PromptAndWrite(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader("help\n"), &out, "> ")

	_, err := s.ReadLine()
	require.NoError(t, err)

	_, err = s.Write([]byte("ok\n"))
	require.NoError(t, err)
	require.Equal(t, "> ok\n", out.String())
}

func TestCompleteLine(t *testing.T) {
	commands := []string{"help", "history", "load", "trades help", "trades list", "trades pnl"}

	tests := []struct {
		name    string
		line    string
		pos     int
		want    string
		wantPos int
		ok      bool
	}{
		{"unique match", "lo", 2, "load ", 5, true},
		{"common prefix", "h", 1, "h", 0, false},
		{"extends to common prefix", "hi", 2, "history ", 8, true},
		{"nested command", "trades l", 8, "trades list ", 12, true},
		{"group prefix", "tr", 2, "trades ", 7, true},
		{"no match", "zz", 2, "", 0, false},
		{"keeps text after cursor", "loxyz", 2, "load xyz", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pos, ok := CompleteLine(commands, tt.line, tt.pos)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantPos, pos)
		})
	}
}
