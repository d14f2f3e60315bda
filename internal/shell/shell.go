// Package shell assembles the desktop application: an ordered list of
// plugins, one or more setup callbacks and a tray runtime that owns the event
// loop.
package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/timeapp/internal/config"
)

var (
	// ErrAlreadyRun is returned when Run is called twice on the same builder.
	ErrAlreadyRun = errors.New("builder has already run")
	// ErrNoRuntime is returned when the builder has no runtime to run on.
	ErrNoRuntime = errors.New("no runtime configured")
)

// Plugin is a capability attached to the application before the event loop
// starts. Plugins that also implement Close are closed in reverse order once
// the loop has stopped.
type Plugin interface {
	Name() string
	Init(app *App) error
}

type closer interface {
	Close() error
}

// SetupFunc runs once inside the event loop before any events are delivered.
type SetupFunc func(app *App) error

// Builder accumulates plugins and setup callbacks for a single Run.
type Builder struct {
	runtime Runtime
	logger  zerolog.Logger
	plugins []Plugin
	setup   []SetupFunc
	ran     bool
}

// NewBuilder returns a builder that runs on rt.
func NewBuilder(rt Runtime) *Builder {
	return &Builder{
		runtime: rt,
		logger:  zerolog.Nop(),
	}
}

// Logger sets the logger the application starts with. Plugins may replace it.
func (b *Builder) Logger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Plugin appends p to the initialization order.
func (b *Builder) Plugin(p Plugin) *Builder {
	if p != nil {
		b.plugins = append(b.plugins, p)
	}
	return b
}

// Setup appends a callback to run when the event loop is ready.
func (b *Builder) Setup(fn SetupFunc) *Builder {
	if fn != nil {
		b.setup = append(b.setup, fn)
	}
	return b
}

// PluginNames lists the attached plugins in initialization order.
func (b *Builder) PluginNames() []string {
	names := make([]string, 0, len(b.plugins))
	for _, p := range b.plugins {
		names = append(names, p.Name())
	}
	return names
}

// Run initializes every plugin, enters the blocking event loop and returns
// the exit code requested through App.Exit. Cancelling ctx stops the loop
// with exit code 0.
func (b *Builder) Run(ctx context.Context, cfg *config.Config) (int, error) {
	if b.ran {
		return 1, ErrAlreadyRun
	}
	b.ran = true

	if b.runtime == nil {
		return 1, ErrNoRuntime
	}
	if cfg == nil {
		cfg = config.Default()
	}

	app := newApp(cfg, b.runtime, b.logger)

	initialized := make([]Plugin, 0, len(b.plugins))
	defer func() {
		closePlugins(app, initialized)
	}()

	for _, p := range b.plugins {
		if err := p.Init(app); err != nil {
			return 1, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		initialized = append(initialized, p)
		app.registerPlugin(p.Name())
		app.Logger().Debug().Str("plugin", p.Name()).Msg("plugin initialized")
	}

	stopped := make(chan struct{})
	onReady := func() {
		for _, fn := range b.setup {
			if err := fn(app); err != nil {
				app.fail(fmt.Errorf("setup: %w", err))
				return
			}
		}
		app.Logger().Info().Strs("plugins", app.Plugins()).Msg("application ready")

		go func() {
			select {
			case <-ctx.Done():
				app.Logger().Info().Msg("context cancelled; stopping event loop")
				app.Exit(0)
			case <-stopped:
			}
		}()
	}
	onExit := func() {
		app.markStopped()
	}

	runErr := b.runtime.Run(onReady, onExit)
	close(stopped)
	app.markStopped()

	if runErr != nil {
		return 1, fmt.Errorf("run event loop: %w", runErr)
	}
	if err := app.failure(); err != nil {
		return 1, err
	}

	code := app.exitStatus()
	app.Logger().Info().Int("code", code).Msg("event loop stopped")
	return code, nil
}

func closePlugins(app *App, plugins []Plugin) {
	for i := len(plugins) - 1; i >= 0; i-- {
		c, ok := plugins[i].(closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			app.Logger().Warn().Err(err).Str("plugin", plugins[i].Name()).Msg("plugin close failed")
		}
	}
}
