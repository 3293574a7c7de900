// Package config loads and validates the browsd configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"browsd/internal/errors"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface of the browser.
type Config struct {
	Browse struct {
		StartDir    string   `yaml:"start_dir"`     // Starting directory; empty means the process working directory
		ShowHidden  bool     `yaml:"show_hidden"`   // Include dot-prefixed entries in listings
		Ignore      []string `yaml:"ignore"`        // Glob patterns dropped from listings
		MaxFileSize int64    `yaml:"max_file_size"` // Largest file the loader will read, in bytes (0 = unlimited)
	} `yaml:"browse"`
	Refresh struct {
		Enabled  bool `yaml:"enabled"`  // Re-list the loaded directory periodically
		Interval int  `yaml:"interval"` // Seconds between refreshes
		Watch    bool `yaml:"watch"`    // Also refresh on filesystem change notifications
	} `yaml:"refresh"`
	Preview struct {
		Highlight bool   `yaml:"highlight"` // Syntax-highlight previewed files
		Theme     string `yaml:"theme"`     // Highlight style name
	} `yaml:"preview"`
	Theme struct {
		Name      string `yaml:"name"`      // Theme name (default, dark, light, monochrome)
		Directory string `yaml:"directory"` // Color for directory entries
		File      string `yaml:"file"`      // Color for file entries
		Selected  string `yaml:"selected"`  // Color for the selected row
		Title     string `yaml:"title"`     // Color for the title/path line
		Border    string `yaml:"border"`    // Color for pane borders
		Help      string `yaml:"help"`      // Color for the help line
	} `yaml:"theme"`
	Log struct {
		Level string `yaml:"level"` // Log level name (debug, info, warn, error)
		File  string `yaml:"file"`  // Log file path; empty logs to stderr
	} `yaml:"log"`
}

// DefaultPath returns the default configuration file location
// (~/.config/browsd/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "browsd", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, errors.Wrap(err, "error reading config file")
	}

	// Unmarshal over the defaults so unset fields keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	// The default listing hides nothing and reads everything
	cfg.Browse.StartDir = ""
	cfg.Browse.ShowHidden = true
	cfg.Browse.Ignore = []string{}
	cfg.Browse.MaxFileSize = 0

	cfg.Refresh.Enabled = true
	cfg.Refresh.Interval = 1
	cfg.Refresh.Watch = true

	cfg.Preview.Highlight = true
	cfg.Preview.Theme = "nord"

	// Colors stay empty here; the styles layer resolves the named theme and
	// treats non-empty color fields as per-key overrides
	cfg.Theme.Name = "default"

	cfg.Log.Level = "info"
	cfg.Log.File = ""

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Refresh.Enabled && c.Refresh.Interval < 1 {
		return errors.NewConfigError("refresh interval must be >= 1 second", "refresh.interval", errors.InvalidConfig, nil)
	}

	if c.Browse.MaxFileSize < 0 {
		return errors.NewConfigError("max file size must be >= 0", "browse.max_file_size", errors.InvalidConfig, nil)
	}

	for _, pattern := range c.Browse.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("bad ignore pattern", pattern, errors.InvalidConfig, err)
		}
	}

	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return errors.NewConfigError("unknown log level", c.Log.Level, errors.InvalidConfig, err)
		}
	}

	if c.Browse.StartDir != "" {
		info, err := os.Stat(c.Browse.StartDir)
		if err != nil {
			return errors.NewConfigError("start directory not accessible", "browse.start_dir", errors.InvalidConfig, err)
		}
		if !info.IsDir() {
			return errors.NewConfigError("start directory is not a directory", "browse.start_dir", errors.InvalidConfig, nil)
		}
	}

	return nil
}

// StartDir resolves the starting directory: the configured one if set,
// otherwise the process working directory.
func (c *Config) StartDir() (string, error) {
	if c.Browse.StartDir != "" {
		return filepath.Abs(c.Browse.StartDir)
	}
	return os.Getwd()
}

// RefreshInterval returns the periodic refresh interval as a Duration.
func (c *Config) RefreshInterval() time.Duration {
	if c.Refresh.Interval < 1 {
		return time.Second
	}
	return time.Duration(c.Refresh.Interval) * time.Second
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Refresh.Enabled = false
	cfg.Refresh.Watch = false
	cfg.Preview.Highlight = false
	cfg.Log.Level = "error"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme's colors by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"directory": "39",  // Blue
			"file":      "252", // Light Grey
			"selected":  "213", // Purple
			"title":     "213", // Purple
			"border":    "213", // Purple
			"help":      "243", // Grey
		},
		"dark": {
			"directory": "33",  // Dark Blue
			"file":      "250", // Grey
			"selected":  "105", // Dark Purple
			"title":     "105", // Dark Purple
			"border":    "105", // Dark Purple
			"help":      "241", // Medium Grey
		},
		"light": {
			"directory": "117", // Light Blue
			"file":      "240", // Dark Grey
			"selected":  "135", // Light Purple
			"title":     "135", // Light Purple
			"border":    "135", // Light Purple
			"help":      "246", // Grey
		},
		"monochrome": {
			"directory": "255", // Bright White
			"file":      "250", // Grey
			"selected":  "232", // Black
			"title":     "245", // Light Grey
			"border":    "245", // Light Grey
			"help":      "241", // Medium Grey
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the named theme's colors in the configuration.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Directory = theme["directory"]
	c.Theme.File = theme["file"]
	c.Theme.Selected = theme["selected"]
	c.Theme.Title = theme["title"]
	c.Theme.Border = theme["border"]
	c.Theme.Help = theme["help"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
