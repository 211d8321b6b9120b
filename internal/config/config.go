package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. IBSTAT_LOG_LEVEL.
const EnvPrefix = "IBSTAT"

// Config holds the effective settings of a console session.
type Config struct {
	Statement    string `envconfig:"STATEMENT"`
	Color        bool   `envconfig:"COLOR" default:"true"`
	Pager        bool   `envconfig:"PAGER" default:"true"`
	TableMaxRows int    `envconfig:"TABLE_MAX_ROWS" default:"0" validate:"gte=0"`
	LogEnabled   bool   `envconfig:"LOG_ENABLED" default:"false"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFile      string `envconfig:"LOG_FILE"`
}

// fileConfig mirrors Config with optional fields so that only keys present
// in the file override defaults.
type fileConfig struct {
	Statement    *string `yaml:"statement" toml:"statement"`
	Color        *bool   `yaml:"color" toml:"color"`
	Pager        *bool   `yaml:"pager" toml:"pager"`
	TableMaxRows *int    `yaml:"table_max_rows" toml:"table_max_rows"`
	LogEnabled   *bool   `yaml:"log_enabled" toml:"log_enabled"`
	LogLevel     *string `yaml:"log_level" toml:"log_level"`
	LogFile      *string `yaml:"log_file" toml:"log_file"`
}

var validate = validator.New()

// Load builds the configuration from defaults, the optional file at path
// and IBSTAT_* environment variables, in increasing precedence.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path != "" {
		fc, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if fc != nil {
			cfg.merge(*fc, os.LookupEnv)
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns the configuration with every key at its default value.
func Defaults() *Config {
	return &Config{
		Color:    true,
		Pager:    true,
		LogLevel: "info",
	}
}

// Validate checks value constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s %s)", keyFor(fe.Field()), fe.Value(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// readFile decodes a YAML or TOML file depending on its extension.
// Returns nil, nil when the file does not exist.
func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	return &fc, nil
}

// merge applies file values for keys the environment does not override.
func (c *Config) merge(fc fileConfig, lookupEnv func(string) (string, bool)) {
	fromEnv := func(key string) bool {
		_, ok := lookupEnv(EnvPrefix + "_" + strings.ToUpper(key))
		return ok
	}

	if fc.Statement != nil && !fromEnv("statement") {
		c.Statement = *fc.Statement
	}
	if fc.Color != nil && !fromEnv("color") {
		c.Color = *fc.Color
	}
	if fc.Pager != nil && !fromEnv("pager") {
		c.Pager = *fc.Pager
	}
	if fc.TableMaxRows != nil && !fromEnv("table_max_rows") {
		c.TableMaxRows = *fc.TableMaxRows
	}
	if fc.LogEnabled != nil && !fromEnv("log_enabled") {
		c.LogEnabled = *fc.LogEnabled
	}
	if fc.LogLevel != nil && !fromEnv("log_level") {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil && !fromEnv("log_file") {
		c.LogFile = *fc.LogFile
	}
}

// Values returns the configuration keyed by the names used in config files.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"statement":      c.Statement,
		"color":          strconv.FormatBool(c.Color),
		"pager":          strconv.FormatBool(c.Pager),
		"table_max_rows": strconv.Itoa(c.TableMaxRows),
		"log_enabled":    strconv.FormatBool(c.LogEnabled),
		"log_level":      c.LogLevel,
		"log_file":       c.LogFile,
	}
}

func keyFor(field string) string {
	switch field {
	case "TableMaxRows":
		return "table_max_rows"
	case "LogEnabled":
		return "log_enabled"
	case "LogLevel":
		return "log_level"
	case "LogFile":
		return "log_file"
	default:
		return strings.ToLower(field)
	}
}
