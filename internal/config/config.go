package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/castlerow/relkit/internal/messages"
)

// FileName is the project-level config file looked up at the project root.
const FileName = "relkit.toml"

// ManifestName is the package manifest that marks a project root.
const ManifestName = "package.json"

// DefaultManager is the package manager used when none is configured.
const DefaultManager = "npm"

// DefaultExecutables lists the build artifacts marked executable when
// artifacts.executables is not configured.
var DefaultExecutables = []string{"bin/cli.js", "bin/server.js"}

// Config is the full relkit configuration.
type Config struct {
	Package   PackageConfig   `toml:"package"`
	Artifacts ArtifactsConfig `toml:"artifacts"`
	Install   InstallConfig   `toml:"install"`
}

// PackageConfig selects the external package manager.
type PackageConfig struct {
	Manager string `toml:"manager"`
}

// ArtifactsConfig lists build artifacts relative to the project root.
type ArtifactsConfig struct {
	Executables []string `toml:"executables"`
}

// InstallConfig tunes the install protocol.
type InstallConfig struct {
	AssumeYes   *bool `toml:"assume_yes"`
	KeepArchive *bool `toml:"keep_archive"`
}

// Manager returns the configured package manager or the default.
func (c *Config) Manager() string {
	if m := strings.TrimSpace(c.Package.Manager); m != "" {
		return m
	}
	return DefaultManager
}

// Executables returns the configured artifact list or the defaults.
// The returned slice is never shared with the config.
func (c *Config) Executables() []string {
	src := c.Artifacts.Executables
	if src == nil {
		src = DefaultExecutables
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// AssumeYes reports whether install confirmation is pre-approved by config.
func (c *Config) AssumeYes() bool {
	return c.Install.AssumeYes != nil && *c.Install.AssumeYes
}

// KeepArchive reports whether the archive survives a successful install.
func (c *Config) KeepArchive() bool {
	return c.Install.KeepArchive != nil && *c.Install.KeepArchive
}

// Validate checks semantic constraints beyond TOML syntax.
// source identifies the config file in error messages.
func (c *Config) Validate(source string) error {
	if c.Package.Manager != "" {
		if strings.TrimSpace(c.Package.Manager) == "" {
			return fmt.Errorf(messages.ConfigManagerEmptyFmt, source)
		}
		if strings.ContainsAny(c.Package.Manager, `/\`) {
			return fmt.Errorf(messages.ConfigManagerPathFmt, source, c.Package.Manager)
		}
	}

	seen := make(map[string]struct{}, len(c.Artifacts.Executables))
	for i, p := range c.Artifacts.Executables {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			return fmt.Errorf(messages.ConfigExecutableEmptyFmt, source, i)
		}
		if filepath.IsAbs(trimmed) {
			return fmt.Errorf(messages.ConfigExecutableAbsoluteFmt, source, i, p)
		}
		clean := filepath.Clean(filepath.FromSlash(trimmed))
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf(messages.ConfigExecutableEscapesFmt, source, i, p)
		}
		if _, dup := seen[clean]; dup {
			return fmt.Errorf(messages.ConfigExecutableDuplicateFmt, source, p)
		}
		seen[clean] = struct{}{}
	}
	return nil
}
