// Package config wires viper-backed configuration: a docmd.yaml file, DOCMD_
// environment variables, and runtime setters. The dark-mode preference is
// the only value written back to disk; everything else is read-only at
// runtime.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const darkKey = "dark"

// Config holds the application configuration
type Config struct {
	DocsPath     string `mapstructure:"path"`
	Dark         bool   `mapstructure:"dark"`
	SidebarWidth int    `mapstructure:"sidebar_width"`
	OutlineWidth int    `mapstructure:"outline_width"`
	Editor       string `mapstructure:"editor"`
	Watch        bool   `mapstructure:"watch"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper. A non-empty cfgFile overrides
// the default search locations.
func Init(cfgFile string) error {
	viper.SetDefault("path", ".")
	viper.SetDefault(darkKey, true)
	viper.SetDefault("sidebar_width", 32) // Tree pane width
	viper.SetDefault("outline_width", 28) // "On this page" pane width
	viper.SetDefault("editor", "")        // Falls back to $EDITOR
	viper.SetDefault("watch", true)       // Reload open file on change

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docmd")
		viper.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docmd"))
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("DOCMD")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPath returns the documentation root with tilde expansion
func GetPath() string {
	return expandTilde(viper.GetString("path"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDark returns the stored dark-mode preference
func GetDark() bool {
	return viper.GetBool(darkKey)
}

// SetDark stores the dark-mode preference and persists it across sessions.
// Persistence is best effort: a read-only config location loses the write
// but never disturbs the running session.
func SetDark(dark bool) {
	viper.Set(darkKey, dark)
	C.Dark = dark
	persist()
}

// SetDarkForSession overrides dark mode for this run without persisting
func SetDarkForSession(dark bool) {
	viper.Set(darkKey, dark)
	C.Dark = dark
}

// GetSidebarWidth returns the tree pane width
func GetSidebarWidth() int {
	return viper.GetInt("sidebar_width")
}

// GetOutlineWidth returns the outline pane width
func GetOutlineWidth() int {
	return viper.GetInt("outline_width")
}

// GetEditor returns the configured editor, falling back to $EDITOR
func GetEditor() string {
	if editor := viper.GetString("editor"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// GetWatch returns whether the open file is watched for changes
func GetWatch() bool {
	return viper.GetBool("watch")
}

// SetPath sets the documentation root at runtime
func SetPath(path string) {
	viper.Set("path", path)
	C.DocsPath = path
}

func persist() {
	if err := viper.WriteConfig(); err == nil {
		return
	}
	// No config file yet: create one under ~/.config/docmd.
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".config", "docmd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	_ = viper.WriteConfigAs(filepath.Join(dir, "docmd.yaml"))
}
