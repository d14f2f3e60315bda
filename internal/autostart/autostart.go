// Package autostart registers the application to launch when the user logs
// in. macOS uses a LaunchAgent plist (or an AppleScript login item), Linux and
// the BSDs use an XDG autostart desktop entry and Windows uses the per-user
// Run registry key.
package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/timeapp/internal/config"
)

// ErrUnsupported is returned on platforms without a login item mechanism.
var ErrUnsupported = errors.New("autostart is not supported on this platform")

// Launcher selects the macOS registration mechanism. Other platforms ignore it.
type Launcher int

const (
	LaunchAgent Launcher = iota
	AppleScript
)

func (l Launcher) String() string {
	switch l {
	case LaunchAgent:
		return string(config.LauncherLaunchAgent)
	case AppleScript:
		return string(config.LauncherAppleScript)
	default:
		return fmt.Sprintf("launcher(%d)", int(l))
	}
}

// ParseLauncher maps a configured launcher name. Empty means LaunchAgent.
func ParseLauncher(name config.LauncherName) (Launcher, error) {
	switch config.LauncherName(strings.ToLower(string(name))) {
	case "", config.LauncherLaunchAgent:
		return LaunchAgent, nil
	case config.LauncherAppleScript:
		return AppleScript, nil
	default:
		return LaunchAgent, fmt.Errorf("unsupported launcher: %s", name)
	}
}

// Options describes the login item to manage.
type Options struct {
	// Name is the human readable application name.
	Name string
	// Identifier is a reverse-DNS label such as com.example.app.
	Identifier string
	ExecPath   string
	Args       []string
	Launcher   Launcher

	// HomeDir and ConfigDir override the user's directories.
	HomeDir   string
	ConfigDir string
}

func (o Options) validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errors.New("autostart: name is required")
	}
	if strings.TrimSpace(o.Identifier) == "" {
		return errors.New("autostart: identifier is required")
	}
	if strings.TrimSpace(o.ExecPath) == "" {
		return errors.New("autostart: executable path is required")
	}
	return nil
}

func (o Options) homeDir() (string, error) {
	if o.HomeDir != "" {
		return o.HomeDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home dir: %w", err)
	}
	return home, nil
}

func (o Options) configDir() (string, error) {
	if o.ConfigDir != "" {
		return o.ConfigDir, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := o.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// Manager provides platform-specific autostart installation.
type Manager interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
	// Location describes where the registration lives.
	Location() string
}

// New returns the Manager for the current platform.
func New(opts Options) (Manager, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return newPlatformManager(opts)
}

// Executable resolves the running binary, following symlinks.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}
