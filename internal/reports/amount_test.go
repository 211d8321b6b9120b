package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1,234.56", 1234.56, false},
		{"-0.5", -0.5, false},
		{"  42 ", 42, false},
		{"", 0, false},
		{"--", 0, false},
		{"-1,000,000", -1000000, false},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "1,234.50", FormatAmount(1234.5))
	require.Equal(t, "-0.25", FormatAmount(-0.25))
	require.Equal(t, "0.00", FormatAmount(0))
}
