package config

import "github.com/ibstat/cli/internal/domain"

// Provider exposes a loaded Config through domain.ConfigProvider.
type Provider struct {
	values map[string]string
}

// NewProvider creates a provider over a snapshot of cfg.
func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		return &Provider{values: map[string]string{}}
	}
	return &Provider{values: cfg.Values()}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GetAll returns a copy of all configuration values.
func (p *Provider) GetAll() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
