package config

// Defaults returns the configuration used when no config file exists. A
// missing file is not an error: the appliance works out of the box with
// these values.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "0.0.0.0",
			Port:    4000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Database: DatabaseConfig{
			Path: "/var/lib/sinkhole/gravity.db",
		},
		API: APIConfig{
			PasswordHash: "",
		},
		Resolver: ResolverConfig{
			Address: "127.0.0.1:53",
		},
		FileLocations: FilesConfig{
			DnsmasqConfig:  "/etc/dnsmasq.d/01-sinkhole.conf",
			SetupVars:      "/etc/sinkhole/setupVars.conf",
			ResolverConfig: "/etc/sinkhole/resolver.conf",
			LocalVersions:  "/etc/sinkhole/localversions",
			LocalBranches:  "/etc/sinkhole/localbranches",
			WebVersion:     "/var/www/sinkhole/VERSION",
		},
	}
}
