package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// EnvToolsRoot overrides the tools root directory.
	EnvToolsRoot = "TOOLS_ROOT"

	// EnvToolsMountPrefix overrides the URL prefix tools are mounted under.
	EnvToolsMountPrefix = "TOOLS_MOUNT_PREFIX"
)

// ToolsConfig contains tool discovery configuration.
type ToolsConfig struct {
	// Root is the directory walked for tool source files.
	// Default: "tools"
	Root string `toml:"root"`

	// MountPrefix is the URL prefix tool routers are mounted under.
	// Default: "/tools"
	MountPrefix string `toml:"mount_prefix"`
}

// Finalize applies defaults, loads environment overrides, and validates the
// tools configuration.
func (c *ToolsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero
// values.
func (c *ToolsConfig) Merge(overlay *ToolsConfig) {
	if overlay.Root != "" {
		c.Root = overlay.Root
	}
	if overlay.MountPrefix != "" {
		c.MountPrefix = overlay.MountPrefix
	}
}

func (c *ToolsConfig) loadDefaults() {
	if c.Root == "" {
		c.Root = "tools"
	}
	if c.MountPrefix == "" {
		c.MountPrefix = "/tools"
	}
}

func (c *ToolsConfig) loadEnv() {
	if v := os.Getenv(EnvToolsRoot); v != "" {
		c.Root = v
	}
	if v := os.Getenv(EnvToolsMountPrefix); v != "" {
		c.MountPrefix = v
	}
}

func (c *ToolsConfig) validate() error {
	if c.Root == "" {
		return fmt.Errorf("root required")
	}
	if !strings.HasPrefix(c.MountPrefix, "/") {
		return fmt.Errorf("mount_prefix must begin with /: %s", c.MountPrefix)
	}
	return nil
}
