package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/AXC/errors"
)

// DefaultConfigTemplate is the commented configuration written by
// `axc config init`.
const DefaultConfigTemplate = `# AXC configuration.
# Discovered upward from the working directory as axc.toml and merged over
# /etc/axc/axc.toml and ~/.axc/axc.toml. Environment variables use the
# AXC_ prefix, for example AXC_OUTPUT_DIR.

[input]
# Directory holding legacy alphabet documents (alphabet.*.xml).
alphabets_dir = "."
# Directory holding legacy colour documents (colour*.xml).
palettes_dir = "."
# Palette file that seeds the named-color baseline.
default_palette = "colour.xml"

[output]
# Directory receiving converted documents.
dir = "converted"

[emitter]
# Run progress output: "cli" or "json".
format = "cli"

[log]
# Console color theme: "gruvbox" or "everforest".
theme = "everforest"
# Emit structured JSON logs instead of console lines.
json = false

[watch]
# Milliseconds to wait after a change before re-running conversion.
debounce_ms = 500
`

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	// Check if file exists before backing up
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	// Delete oldest backup if exists
	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Log deletion failures (but don't fail config save)
		fmt.Printf("Failed to delete old backup %s: %v\n", back3, err)
	}

	// Rotate .back2 to .back3
	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	// Rotate .back1 to .back2
	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	// Copy current to .back1
	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// InitFile writes the default configuration template to path. An existing
// file is rotated into the .back1..3 chain first.
func InitFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	// Mark this as our own write to prevent reload loops
	globalWatcherMu.Lock()
	if globalWatcher != nil {
		globalWatcher.MarkOwnWrite()
	}
	globalWatcherMu.Unlock()

	if err := os.WriteFile(path, []byte(DefaultConfigTemplate), DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}

// RenderSettings renders a settings map as TOML for display.
func RenderSettings(settings map[string]interface{}) (string, error) {
	data, err := toml.Marshal(settings)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal config")
	}
	return string(data), nil
}
