//go:build !cgo && !windows
// +build !cgo,!windows

package tray

import "github.com/example/timeapp/internal/shell"

type unavailableRuntime struct{}

// New returns a runtime that reports the tray as unavailable.
func New() shell.Runtime {
	return unavailableRuntime{}
}

func (unavailableRuntime) Run(func(), func()) error {
	return ErrUnavailable
}

func (unavailableRuntime) Quit() {}

func (unavailableRuntime) SetTray(shell.TrayIcon, func(shell.MenuEvent)) error {
	return ErrUnavailable
}
