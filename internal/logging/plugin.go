package logging

import (
	"io"
	"log"

	"github.com/rs/zerolog"

	"github.com/example/timeapp/internal/shell"
)

// PluginName identifies the logging plugin on the application.
const PluginName = "log"

// Plugin attaches a structured logger to the application at a minimum level.
type Plugin struct {
	level  zerolog.Level
	opts   Options
	closer io.Closer
	prev   io.Writer
}

// NewPlugin returns a logging plugin. Output below level is dropped.
func NewPlugin(level zerolog.Level, opts Options) *Plugin {
	return &Plugin{level: level, opts: opts}
}

// Name implements shell.Plugin.
func (p *Plugin) Name() string { return PluginName }

// Level reports the minimum severity the plugin emits.
func (p *Plugin) Level() zerolog.Level { return p.level }

// Init installs the logger on app and routes the standard library logger
// through it.
func (p *Plugin) Init(app *shell.App) error {
	logger, closer, err := New(p.level, p.opts)
	if err != nil {
		return err
	}
	p.closer = closer

	app.SetLogger(logger)
	SetDefault(*app.Logger())
	if p.level <= zerolog.DebugLevel {
		EnableDebug()
	}

	p.prev = log.Writer()
	log.SetFlags(0)
	log.SetOutput(app.Logger())

	app.Logger().Info().
		Str("run_id", app.RunID()).
		Str("level", p.level.String()).
		Str("file", p.opts.File).
		Msg("logging initialized")
	return nil
}

// Close restores the standard logger and releases the log file.
func (p *Plugin) Close() error {
	if p.prev != nil {
		log.SetOutput(p.prev)
		p.prev = nil
	}
	DisableDebug()
	SetDefault(zerolog.Nop())
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
