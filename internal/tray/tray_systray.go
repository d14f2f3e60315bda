//go:build cgo || windows
// +build cgo windows

package tray

import (
	"context"
	"sync"

	"github.com/getlantern/systray"

	"github.com/example/timeapp/internal/logging"
	"github.com/example/timeapp/internal/shell"
)

type systrayRuntime struct {
	mu     sync.Mutex
	set    bool
	items  []*systray.MenuItem
	cancel context.CancelFunc
}

// New returns the systray-backed runtime. Run must be called from the main
// goroutine.
func New() shell.Runtime {
	return &systrayRuntime{}
}

func (r *systrayRuntime) Run(onReady func(), onExit func()) error {
	systray.Run(onReady, func() {
		r.shutdown()
		if onExit != nil {
			onExit()
		}
	})
	return nil
}

func (r *systrayRuntime) Quit() {
	systray.Quit()
}

func (r *systrayRuntime) SetTray(icon shell.TrayIcon, dispatch func(shell.MenuEvent)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.set {
		return ErrTrayAlreadySet
	}
	r.set = true

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	applyIcon(normalizedIcon(icon.Icon))
	if icon.Tooltip != "" {
		systray.SetTooltip(icon.Tooltip)
	}

	for _, item := range icon.Menu.Items() {
		mi := systray.AddMenuItem(item.Label, item.Tooltip)
		if !item.Enabled {
			mi.Disable()
		}
		if item.Accelerator != "" {
			logging.Debugf("tray menu item %s: accelerators are not supported by the system tray", item.ID)
		}
		r.items = append(r.items, mi)
		go forwardClicks(ctx, mi.ClickedCh, item.ID, dispatch)
	}
	logging.Debugf("tray icon %s rendered with %d items", icon.ID, len(r.items))
	return nil
}

func (r *systrayRuntime) shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.items = nil
}
