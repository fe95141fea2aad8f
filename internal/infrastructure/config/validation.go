package config

import (
	"fmt"
	"net"
	"path/filepath"
)

// Validate checks the configuration for values the daemon cannot run with.
// It is called after every load and reload; a config that fails validation
// is never installed.
func Validate(cfg *Config) error {
	if ip := net.ParseIP(cfg.Server.Address); ip == nil || ip.To4() == nil {
		return fmt.Errorf("server.address %q is not a valid IPv4 address", cfg.Server.Address)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", cfg.Server.Port)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q is not one of json, console", cfg.Logging.Format)
	}

	if !filepath.IsAbs(cfg.Database.Path) {
		return fmt.Errorf("database.path %q must be absolute", cfg.Database.Path)
	}

	for name, path := range map[string]string{
		"dnsmasq_config":  cfg.FileLocations.DnsmasqConfig,
		"setup_vars":      cfg.FileLocations.SetupVars,
		"resolver_config": cfg.FileLocations.ResolverConfig,
		"local_versions":  cfg.FileLocations.LocalVersions,
		"local_branches":  cfg.FileLocations.LocalBranches,
		"web_version":     cfg.FileLocations.WebVersion,
	} {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("file_locations.%s %q must be absolute", name, path)
		}
	}

	return nil
}
