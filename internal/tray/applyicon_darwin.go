//go:build darwin && cgo

package tray

import "github.com/getlantern/systray"

// applyIcon draws the tray icon as a template image so the menu bar can tint
// it for light and dark appearance. The same bytes serve as the fallback.
func applyIcon(data []byte) {
	systray.SetTemplateIcon(data, data)
}
