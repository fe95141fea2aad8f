package config_test

import (
	"testing"

	"github.com/bnema/sinkhole/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, config.Validate(config.Defaults()))
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"ipv6 address", func(c *config.Config) { c.Server.Address = "::1" }},
		{"hostname address", func(c *config.Config) { c.Server.Address = "localhost" }},
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }},
		{"port too large", func(c *config.Config) { c.Server.Port = 70000 }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "critical" }},
		{"unknown log format", func(c *config.Config) { c.Logging.Format = "pretty" }},
		{"relative db path", func(c *config.Config) { c.Database.Path = "gravity.db" }},
		{"relative file location", func(c *config.Config) { c.FileLocations.SetupVars = "setupVars.conf" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			tt.mutate(cfg)
			assert.Error(t, config.Validate(cfg))
		})
	}
}
