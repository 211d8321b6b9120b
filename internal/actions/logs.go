package actions

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/ui/style"
)

const defaultLogLimit = 50

// Logs handles "logs [limit:n]": the last lines of the session log file.
func (c *Console) Logs(args string) error {
	limit, err := dispatchers.NewArgs(args).Int("limit", defaultLogLimit)
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = defaultLogLimit
	}

	path := ""
	if c.deps.LogPath != nil {
		path = c.deps.LogPath()
	}
	if path == "" {
		c.deps.printf("%s\n", style.Muted("Logging is disabled"))
		return nil
	}

	content, err := c.deps.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.deps.printf("%s\n", style.Muted("No log file found at "+path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		c.deps.printf("%s\n", style.Muted("Log file is empty"))
		return nil
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	colored := make([]string, len(lines))
	for i, l := range lines {
		colored[i] = colorizeLogLine(l)
	}
	c.deps.page(strings.Join(colored, "\n"))
	return nil
}

func colorizeLogLine(line string) string {
	switch {
	case strings.Contains(line, "] ERROR:"):
		return style.Error(line)
	case strings.Contains(line, "] WARN:"):
		return style.Warning(line)
	case strings.Contains(line, "] INFO:"):
		return style.Info(line)
	case strings.Contains(line, "] DEBUG:"):
		return style.Muted(line)
	default:
		return line
	}
}
