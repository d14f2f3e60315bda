package shell

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/timeapp/internal/config"
)

// ErrTrayExists is returned when a second tray icon is registered.
var ErrTrayExists = errors.New("tray icon already registered")

// App is the handle passed to plugins, setup callbacks and menu handlers.
type App struct {
	cfg     *config.Config
	runID   string
	runtime Runtime

	mu      sync.RWMutex
	logger  zerolog.Logger
	plugins []string
	tray    *TrayIcon
	err     error
	stopped bool

	exitOnce sync.Once
	exitCode int

	dispatchMu sync.Mutex
}

func newApp(cfg *config.Config, rt Runtime, logger zerolog.Logger) *App {
	runID := uuid.NewString()
	return &App{
		cfg:     cfg,
		runID:   runID,
		runtime: rt,
		logger:  logger.With().Str("run", runID[:8]).Logger(),
	}
}

// Config returns the configuration the application was started with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// RunID uniquely identifies this process run in logs.
func (a *App) RunID() string {
	return a.runID
}

// Logger returns the current application logger.
func (a *App) Logger() *zerolog.Logger {
	a.mu.RLock()
	defer a.mu.RUnlock()
	l := a.logger
	return &l
}

// SetLogger replaces the application logger.
func (a *App) SetLogger(logger zerolog.Logger) {
	a.mu.Lock()
	a.logger = logger.With().Str("run", a.runID[:8]).Logger()
	a.mu.Unlock()
}

// HasPlugin reports whether a plugin with the given name was initialized.
func (a *App) HasPlugin(name string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, p := range a.plugins {
		if p == name {
			return true
		}
	}
	return false
}

// Plugins lists initialized plugins in order.
func (a *App) Plugins() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.plugins))
	copy(out, a.plugins)
	return out
}

// AddTray registers the application's tray icon with the runtime.
func (a *App) AddTray(icon TrayIcon) error {
	if icon.Menu == nil {
		return ErrEmptyMenu
	}

	a.mu.Lock()
	if a.tray != nil {
		a.mu.Unlock()
		return ErrTrayExists
	}
	registered := icon
	a.tray = &registered
	a.mu.Unlock()

	if err := a.runtime.SetTray(icon, a.dispatcher(icon.OnMenuEvent)); err != nil {
		a.mu.Lock()
		a.tray = nil
		a.mu.Unlock()
		return fmt.Errorf("register tray: %w", err)
	}

	a.Logger().Debug().Str("tray", icon.ID).Int("items", len(icon.Menu.Items())).Msg("tray icon registered")
	return nil
}

// Exit asks the event loop to stop. Run returns code once plugins are closed.
// Only the first call has an effect.
func (a *App) Exit(code int) {
	a.exitOnce.Do(func() {
		a.mu.Lock()
		a.exitCode = code
		a.mu.Unlock()
		a.Logger().Info().Int("code", code).Msg("exit requested")
		a.runtime.Quit()
	})
}

func (a *App) dispatcher(handler MenuHandler) func(MenuEvent) {
	return func(event MenuEvent) {
		a.dispatchMu.Lock()
		defer a.dispatchMu.Unlock()

		if a.isStopped() {
			return
		}
		a.Logger().Debug().Str("id", event.ID).Msg("menu event")
		if handler != nil {
			handler(a, event)
		}
	}
}

func (a *App) registerPlugin(name string) {
	a.mu.Lock()
	a.plugins = append(a.plugins, name)
	a.mu.Unlock()
}

func (a *App) fail(err error) {
	a.mu.Lock()
	if a.err == nil {
		a.err = err
	}
	a.mu.Unlock()
	a.Logger().Error().Err(err).Msg("setup failed")
	a.runtime.Quit()
}

func (a *App) failure() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

func (a *App) exitStatus() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.exitCode
}

func (a *App) markStopped() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
}

func (a *App) isStopped() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stopped
}
