// Package tray provides the OS tray runtime the shell runs on.
package tray

import (
	"context"
	_ "embed"
	"errors"

	"github.com/example/timeapp/internal/shell"
)

var (
	// ErrUnavailable is returned when the binary was built without tray support.
	ErrUnavailable = errors.New("system tray is unavailable without cgo support")
	// ErrTrayAlreadySet is returned when a second tray icon is registered.
	ErrTrayAlreadySet = errors.New("system tray supports a single icon")
)

//go:embed icon.png
var defaultIconData []byte

// DefaultIcon returns a copy of the embedded tray icon.
func DefaultIcon() []byte {
	return cloneIcon(defaultIconData)
}

func cloneIcon(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp
}

func normalizedIcon(data []byte) []byte {
	if len(data) == 0 {
		return platformNormalizeIcon(DefaultIcon())
	}
	normalized := platformNormalizeIcon(data)
	if len(normalized) == 0 {
		return platformNormalizeIcon(DefaultIcon())
	}
	return cloneIcon(normalized)
}

// forwardClicks turns clicks on one menu item into menu events until ctx is
// cancelled or the click channel is closed.
func forwardClicks(ctx context.Context, clicks <-chan struct{}, id string, dispatch func(shell.MenuEvent)) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-clicks:
			if !ok {
				return
			}
			dispatch(shell.MenuEvent{ID: id})
		}
	}
}
