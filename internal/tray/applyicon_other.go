//go:build (cgo || windows) && !darwin

package tray

import "github.com/getlantern/systray"

func applyIcon(data []byte) {
	systray.SetIcon(data)
}
