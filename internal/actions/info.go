package actions

import (
	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/ui/style"
	"github.com/ibstat/cli/internal/usage"
)

// Config handles "config [key:<name>]": the effective configuration.
func (c *Console) Config(args string) error {
	key, ok, err := dispatchers.ResolveArgument("key", args)
	if err != nil {
		return err
	}

	values := map[string]string{}
	if c.deps.ConfigAll != nil {
		values = c.deps.ConfigAll()
	}

	if ok {
		v, found := values[key]
		if !found {
			return usage.InvalidValue("key", key)
		}
		c.deps.printf("%s\n", v)
		return nil
	}

	for _, section := range domain.ConfigSections() {
		c.deps.printf("%s\n", style.Header(section))
		for _, k := range domain.ConfigKeys {
			if k.Section != section {
				continue
			}
			c.deps.printf("  %s = %s  %s\n", style.Info(k.Name), values[k.Name], style.Muted(k.Description))
		}
	}
	return nil
}

// ShowVersion handles "version".
func (c *Console) ShowVersion(string) error {
	c.deps.printf("ibstat version %v\n", c.deps.Version())
	return nil
}
