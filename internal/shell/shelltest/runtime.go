// Package shelltest provides an in-memory shell.Runtime for tests.
package shelltest

import (
	"errors"
	"sync"
	"time"

	"github.com/example/timeapp/internal/shell"
)

// Runtime records tray registrations and lets tests drive menu events
// without an OS tray.
type Runtime struct {
	// RunErr is returned from Run instead of entering the loop.
	RunErr error
	// SetTrayErr is returned from SetTray.
	SetTrayErr error

	mu       sync.Mutex
	icon     *shell.TrayIcon
	dispatch func(shell.MenuEvent)
	quits    int

	readyOnce sync.Once
	ready     chan struct{}
	quitOnce  sync.Once
	quit      chan struct{}
	done      chan struct{}
}

// NewRuntime returns an idle runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		ready: make(chan struct{}),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Run invokes onReady on its own goroutine, like a native tray loop, and
// blocks until Quit.
func (r *Runtime) Run(onReady func(), onExit func()) error {
	defer close(r.done)
	if r.RunErr != nil {
		return r.RunErr
	}

	go func() {
		onReady()
		r.readyOnce.Do(func() { close(r.ready) })
	}()

	<-r.quit
	if onExit != nil {
		onExit()
	}
	return nil
}

// Quit stops the loop started by Run.
func (r *Runtime) Quit() {
	r.mu.Lock()
	r.quits++
	r.mu.Unlock()
	r.quitOnce.Do(func() { close(r.quit) })
}

// SetTray records the tray icon and its dispatch function.
func (r *Runtime) SetTray(icon shell.TrayIcon, dispatch func(shell.MenuEvent)) error {
	if r.SetTrayErr != nil {
		return r.SetTrayErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.icon = &icon
	r.dispatch = dispatch
	return nil
}

// Tray returns the registered tray icon.
func (r *Runtime) Tray() (shell.TrayIcon, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.icon == nil {
		return shell.TrayIcon{}, false
	}
	return *r.icon, true
}

// Quits reports how many times Quit was called.
func (r *Runtime) Quits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quits
}

// WaitReady blocks until setup callbacks have completed.
func (r *Runtime) WaitReady(timeout time.Duration) error {
	select {
	case <-r.ready:
		return nil
	case <-r.quit:
		return errors.New("runtime quit before becoming ready")
	case <-time.After(timeout):
		return errors.New("timed out waiting for runtime")
	}
}

// Stopped reports whether Run has returned.
func (r *Runtime) Stopped() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Click delivers a menu event the way a tray click would.
func (r *Runtime) Click(id string) error {
	r.mu.Lock()
	dispatch := r.dispatch
	r.mu.Unlock()
	if dispatch == nil {
		return errors.New("no tray registered")
	}
	dispatch(shell.MenuEvent{ID: id})
	return nil
}
