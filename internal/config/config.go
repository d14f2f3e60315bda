package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "timeapp"
	configFileName = "config.yaml"
)

// LauncherName identifies how the autostart entry launches the binary.
type LauncherName string

const (
	LauncherLaunchAgent LauncherName = "launchagent"
	LauncherAppleScript LauncherName = "applescript"
)

// LogConfig controls log output. Level applies to the startup console logger;
// the file settings apply to the logging plugin of debug builds.
type LogConfig struct {
	Level      string `yaml:"level,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"maxSizeMB,omitempty"`
	MaxBackups int    `yaml:"maxBackups,omitempty"`
}

// AutostartConfig controls login-time registration.
type AutostartConfig struct {
	Enabled  bool         `yaml:"enabled"`
	Launcher LauncherName `yaml:"launcher,omitempty"`
	Args     []string     `yaml:"args,omitempty"`
}

// Config holds the application metadata consumed at startup.
type Config struct {
	ProductName string          `yaml:"productName"`
	Identifier  string          `yaml:"identifier"`
	Tooltip     string          `yaml:"tooltip,omitempty"`
	Log         LogConfig       `yaml:"log"`
	Autostart   AutostartConfig `yaml:"autostart"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ProductName: "TimeApp",
		Identifier:  "com.timeapp.desktop",
		Tooltip:     "TimeApp",
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Autostart: AutostartConfig{
			Enabled:  true,
			Launcher: LauncherLaunchAgent,
		},
	}
}

// Validate reports whether the configuration can be used to start the shell.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProductName) == "" {
		return errors.New("productName is required")
	}
	if strings.TrimSpace(c.Identifier) == "" {
		return errors.New("identifier is required")
	}
	if strings.ContainsAny(c.Identifier, `/\ `) {
		return fmt.Errorf("identifier %q must not contain path separators or spaces", c.Identifier)
	}
	switch c.Autostart.Launcher {
	case "", LauncherLaunchAgent, LauncherAppleScript:
	default:
		return fmt.Errorf("unsupported autostart launcher: %s", c.Autostart.Launcher)
	}
	return nil
}

// Path returns the resolved configuration file path.
func Path() (string, error) {
	if custom := os.Getenv("TIMEAPP_CONFIG_PATH"); custom != "" {
		return custom, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine user config dir: %w", err)
	}

	return filepath.Join(base, configDirName, configFileName), nil
}

// Load reads the configuration file. A missing file yields Default.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path, filling unset fields with
// their defaults.
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveFile writes cfg to path atomically.
func SaveFile(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("nil configuration")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, raw, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return os.Rename(tempFile, path)
}
