package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibstat/cli/internal/domain"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.True(t, cfg.Color)
	require.True(t, cfg.Pager)
	require.False(t, cfg.LogEnabled)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 0, cfg.TableMaxRows)
	require.Empty(t, cfg.Statement)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FileFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "statement: /tmp/u123.csv\ncolor: false\nlog_level: DEBUG\ntable_max_rows: 50\n",
		},
		{
			name:    "toml",
			file:    "config.toml",
			content: "statement = \"/tmp/u123.csv\"\ncolor = false\nlog_level = \"debug\"\ntable_max_rows = 50\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			require.Equal(t, "/tmp/u123.csv", cfg.Statement)
			require.False(t, cfg.Color)
			require.Equal(t, "debug", cfg.LogLevel)
			require.Equal(t, 50, cfg.TableMaxRows)
			// untouched keys keep their defaults
			require.True(t, cfg.Pager)
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("IBSTAT_LOG_LEVEL", "error")
	t.Setenv("IBSTAT_COLOR", "true")

	cfg, err := Load(writeConfig(t, "config.yaml", "log_level: debug\ncolor: false\npager: false\n"))
	require.NoError(t, err)

	require.Equal(t, "error", cfg.LogLevel)
	require.True(t, cfg.Color)
	require.False(t, cfg.Pager)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown log level",
			content: "log_level: chatty\n",
			wantErr: "log_level",
		},
		{
			name:    "negative row limit",
			content: "table_max_rows: -1\n",
			wantErr: "table_max_rows",
		},
		{
			name:    "malformed yaml",
			content: "color: [\n",
			wantErr: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.yaml", tt.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(writeConfig(t, "config.ini", "color=false\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported config format")
}

func TestValues_CoverEveryDocumentedKey(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	values := cfg.Values()
	for _, k := range domain.ConfigKeys {
		v, ok := values[k.Name]
		require.True(t, ok, "missing key %s", k.Name)
		require.Equal(t, k.Default, v, "default for %s", k.Name)
	}
}

func TestProvider(t *testing.T) {
	cfg := &Config{LogLevel: "warn", TableMaxRows: 10}
	p := NewProvider(cfg)

	v, ok := p.Get("log_level")
	require.True(t, ok)
	require.Equal(t, "warn", v)

	_, ok = p.Get("nope")
	require.False(t, ok)

	all := p.GetAll()
	all["log_level"] = "mutated"
	v, _ = p.Get("log_level")
	require.Equal(t, "warn", v)
}

func TestDefaults_MatchDocumentedDefaults(t *testing.T) {
	values := Defaults().Values()
	for _, k := range domain.ConfigKeys {
		require.Equal(t, k.Default, values[k.Name], k.Name)
	}
	require.NoError(t, Defaults().Validate())
}
