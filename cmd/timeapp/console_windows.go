//go:build windows

package main

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/windows"

	"github.com/example/timeapp/internal/config"
)

// prepareConsole hides the console window of release builds, matching a GUI
// subsystem binary. Debug builds keep the console for log output. It runs
// after .env is loaded so TIMEAPP_DEBUG and TIMEAPP_SHOW_CONSOLE may be set
// there.
func prepareConsole(args []string) {
	if config.Debug() || shouldShowConsole(args) {
		return
	}
	hideConsoleWindow()
}

func shouldShowConsole(args []string) bool {
	if os.Getenv("TIMEAPP_SHOW_CONSOLE") != "" {
		return true
	}

	for _, raw := range args {
		normalized := strings.ToLower(strings.TrimLeft(strings.TrimSpace(raw), "-/"))
		if normalized == "console" {
			return true
		}
		if value, ok := strings.CutPrefix(normalized, "console="); ok {
			if parsed, err := strconv.ParseBool(value); err == nil && parsed {
				return true
			}
		}
	}

	return false
}

func hideConsoleWindow() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	user32 := windows.NewLazySystemDLL("user32.dll")

	hwnd, _, _ := kernel32.NewProc("GetConsoleWindow").Call()
	if hwnd == 0 {
		return
	}

	const swHide = 0
	user32.NewProc("ShowWindow").Call(hwnd, swHide)
	kernel32.NewProc("FreeConsole").Call()
}
