// Package env abstracts access to the appliance's configuration files on
// disk, so code that reads version or DNS settings can run against a real
// filesystem in production and an in-memory one in tests.
package env

import (
	"fmt"
	"os"
)

// File identifies one of the appliance files the API reads or writes.
type File string

const (
	// FileDnsmasqConfig is the generated dnsmasq snippet for the appliance.
	FileDnsmasqConfig File = "dnsmasq_config"
	// FileSetupVars holds the appliance's installation settings.
	FileSetupVars File = "setup_vars"
	// FileResolverConfig is the long-running resolver's own config file.
	FileResolverConfig File = "resolver_config"
	// FileLocalVersions caches `git describe` output per component.
	FileLocalVersions File = "local_versions"
	// FileLocalBranches caches the checked-out branch per component.
	FileLocalBranches File = "local_branches"
	// FileWebVersion is the VERSION file shipped with the web interface.
	FileWebVersion File = "web_version"
)

// Locations maps each appliance file to its path on disk. It comes from the
// [file_locations] section of the config file.
type Locations map[File]string

// Env reads and writes appliance files. Implementations: the real
// filesystem and an in-memory fake for tests.
type Env interface {
	// ReadFile returns the contents of the given appliance file. A missing
	// file is an error; callers decide whether absence is acceptable.
	ReadFile(file File) (string, error)

	// WriteFile replaces the contents of the given appliance file.
	WriteFile(file File, contents string) error
}

type fsEnv struct {
	locations Locations
}

// NewFilesystem creates an Env backed by the real filesystem, resolving
// each appliance file through the configured locations.
func NewFilesystem(locations Locations) Env {
	return &fsEnv{locations: locations}
}

func (e *fsEnv) path(file File) (string, error) {
	path, ok := e.locations[file]
	if !ok {
		return "", fmt.Errorf("no configured location for appliance file %q", file)
	}
	return path, nil
}

func (e *fsEnv) ReadFile(file File) (string, error) {
	path, err := e.path(file)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}

func (e *fsEnv) WriteFile(file File, contents string) error {
	const filePerm = 0o644
	path, err := e.path(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(contents), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}
