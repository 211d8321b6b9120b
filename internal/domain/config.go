package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in the config listing
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in the `config` command.
var ConfigKeys = []ConfigKey{
	// Statement
	{
		Name:        "statement",
		Default:     "",
		Description: "Statement file loaded at startup",
		Section:     "Statement",
	},
	// Display
	{
		Name:        "color",
		Default:     "true",
		Description: "Colored output when attached to a terminal",
		Section:     "Display",
	},
	{
		Name:        "pager",
		Default:     "true",
		Description: "Page long tables when attached to a terminal",
		Section:     "Display",
	},
	{
		Name:        "table_max_rows",
		Default:     "0",
		Description: "Maximum rows printed per table (0 = unlimited)",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "log_enabled",
		Default:     "false",
		Description: "Write a log file",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "log_file",
		Default:     "",
		Description: "Log file path (defaults to the config directory)",
		Section:     "Logging",
	},
}

// ConfigSections returns the distinct sections in display order.
func ConfigSections() []string {
	var sections []string
	seen := make(map[string]bool)
	for _, k := range ConfigKeys {
		if !seen[k.Section] {
			seen[k.Section] = true
			sections = append(sections, k.Section)
		}
	}
	return sections
}
