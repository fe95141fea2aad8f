// Package config loads and watches the API's TOML configuration file.
package config

import (
	"github.com/bnema/sinkhole/internal/infrastructure/env"
)

// Config represents the complete configuration for the sinkhole API.
type Config struct {
	Server        ServerConfig   `mapstructure:"server" toml:"server" json:"server"`
	Logging       LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database      DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	API           APIConfig      `mapstructure:"api" toml:"api" json:"api"`
	Resolver      ResolverConfig `mapstructure:"resolver" toml:"resolver" json:"resolver"`
	FileLocations FilesConfig    `mapstructure:"file_locations" toml:"file_locations" json:"file_locations"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Address is the IPv4 address to bind.
	Address string `mapstructure:"address" toml:"address" json:"address"`
	// Port is the TCP port to listen on.
	Port int `mapstructure:"port" toml:"port" json:"port"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level"`
	// Format is json or console.
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// DatabaseConfig locates the gravity database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// APIConfig holds API authentication settings.
type APIConfig struct {
	// PasswordHash is the bcrypt hash of the admin token. Empty disables
	// authentication; mutating endpoints then reject every request.
	PasswordHash string `mapstructure:"password_hash" toml:"password_hash" json:"password_hash"`
}

// ResolverConfig locates the resolver process.
type ResolverConfig struct {
	// Address is the resolver's DNS listener (host:port).
	Address string `mapstructure:"address" toml:"address" json:"address"`
}

// FilesConfig holds the locations of the appliance files. All paths must be
// absolute.
type FilesConfig struct {
	DnsmasqConfig  string `mapstructure:"dnsmasq_config" toml:"dnsmasq_config" json:"dnsmasq_config"`
	SetupVars      string `mapstructure:"setup_vars" toml:"setup_vars" json:"setup_vars"`
	ResolverConfig string `mapstructure:"resolver_config" toml:"resolver_config" json:"resolver_config"`
	LocalVersions  string `mapstructure:"local_versions" toml:"local_versions" json:"local_versions"`
	LocalBranches  string `mapstructure:"local_branches" toml:"local_branches" json:"local_branches"`
	WebVersion     string `mapstructure:"web_version" toml:"web_version" json:"web_version"`
}

// Locations converts the configured file paths into env.Locations.
func (f FilesConfig) Locations() env.Locations {
	return env.Locations{
		env.FileDnsmasqConfig:  f.DnsmasqConfig,
		env.FileSetupVars:      f.SetupVars,
		env.FileResolverConfig: f.ResolverConfig,
		env.FileLocalVersions:  f.LocalVersions,
		env.FileLocalBranches:  f.LocalBranches,
		env.FileWebVersion:     f.WebVersion,
	}
}
