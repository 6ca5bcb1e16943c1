package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultPageSize is how many siblings are revealed per "show more" step.
const DefaultPageSize = 5

type GlobalConfig struct {
	// Backend selects durable storage: "sqlite" (default) or "json".
	Backend string `json:"backend,omitempty"`

	// TaxonomyPath overrides the embedded hobby taxonomy (YAML or JSON).
	TaxonomyPath string `json:"taxonomyPath,omitempty"`

	// PageSize overrides DefaultPageSize for disclosure paging.
	PageSize int `json:"pageSize,omitempty"`

	// ColorSeed makes synthesized category colors reproducible when non-zero.
	ColorSeed uint64 `json:"colorSeed,omitempty"`

	Log *LogConfig `json:"log,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type LogConfig struct {
	// Level is one of debug|info|warn|error.
	Level string `json:"level,omitempty"`
	// Format is text or json.
	Format string `json:"format,omitempty"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme string `json:"theme,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.hobbies).
	if v := strings.TrimSpace(os.Getenv("HOBBIES_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hobbies"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &cfg, nil
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Keep a copy of the previous config so an accidental overwrite is recoverable.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// EffectivePageSize returns PageSize, or DefaultPageSize when unset.
func (c *GlobalConfig) EffectivePageSize() int {
	if c == nil || c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// ConfigKeys lists the keys accepted by Set, sorted.
func ConfigKeys() []string {
	keys := []string{"backend", "taxonomyPath", "pageSize", "colorSeed", "log.level", "log.format", "tui.theme"}
	sort.Strings(keys)
	return keys
}

// Set assigns one config value from its string form.
func (c *GlobalConfig) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "backend":
		b := NormalizeBackend(value)
		if b != BackendSQLite && b != BackendJSON {
			return fmt.Errorf("invalid backend: %q", value)
		}
		c.Backend = b
	case "taxonomyPath":
		c.TaxonomyPath = value
	case "pageSize":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid pageSize: %q", value)
		}
		c.PageSize = n
	case "colorSeed":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid colorSeed: %q", value)
		}
		c.ColorSeed = n
	case "log.level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log.level: %q", value)
		}
		if c.Log == nil {
			c.Log = &LogConfig{}
		}
		c.Log.Level = strings.ToLower(value)
	case "log.format":
		switch strings.ToLower(value) {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log.format: %q", value)
		}
		if c.Log == nil {
			c.Log = &LogConfig{}
		}
		c.Log.Format = strings.ToLower(value)
	case "tui.theme":
		switch strings.ToLower(value) {
		case "light", "dark", "auto":
		default:
			return fmt.Errorf("invalid tui.theme: %q", value)
		}
		if c.TUI == nil {
			c.TUI = &TUIConfig{}
		}
		c.TUI.Theme = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %q (known: %s)", key, strings.Join(ConfigKeys(), ", "))
	}
	return nil
}
