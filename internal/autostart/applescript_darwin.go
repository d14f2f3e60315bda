//go:build darwin

package autostart

import (
	"fmt"
	"os/exec"
	"strings"
)

// appleScriptManager registers a System Events login item. Login items
// reference the .app bundle rather than the binary inside it.
type appleScriptManager struct {
	name string
	path string
	run  func(script string) (string, error)
}

func newAppleScriptManager(opts Options) *appleScriptManager {
	return &appleScriptManager{
		name: opts.Name,
		path: bundlePath(opts.ExecPath),
		run:  runOsascript,
	}
}

func (m *appleScriptManager) Location() string {
	return "System Events login item " + m.name
}

func (m *appleScriptManager) IsEnabled() (bool, error) {
	out, err := m.run(`tell application "System Events" to get the name of every login item`)
	if err != nil {
		return false, err
	}
	for _, name := range strings.Split(out, ",") {
		if strings.TrimSpace(name) == m.name {
			return true, nil
		}
	}
	return false, nil
}

func (m *appleScriptManager) Enable() error {
	if enabled, err := m.IsEnabled(); err == nil && enabled {
		return nil
	}
	script := fmt.Sprintf(`tell application "System Events" to make login item at end with properties {name:%s, path:%s, hidden:false}`,
		appleScriptString(m.name), appleScriptString(m.path))
	_, err := m.run(script)
	return err
}

func (m *appleScriptManager) Disable() error {
	enabled, err := m.IsEnabled()
	if err != nil || !enabled {
		return err
	}
	script := fmt.Sprintf(`tell application "System Events" to delete login item %s`, appleScriptString(m.name))
	_, err = m.run(script)
	return err
}

func runOsascript(script string) (string, error) {
	out, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

func appleScriptString(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	return `"` + escaped + `"`
}

func bundlePath(exe string) string {
	if idx := strings.Index(exe, ".app/Contents/MacOS/"); idx >= 0 {
		return exe[:idx+len(".app")]
	}
	return exe
}
