package autostart

import (
	"github.com/example/timeapp/internal/shell"
)

// PluginName identifies the autostart plugin on the application.
const PluginName = "autostart"

// Plugin registers the running binary as a login item when the application
// starts. Registration problems are logged and never stop the application.
type Plugin struct {
	launcher Launcher
	args     []string

	executable func() (string, error)
	newManager func(Options) (Manager, error)

	manager Manager
}

// NewPlugin returns an autostart plugin. A nil args launches the binary
// without extra arguments.
func NewPlugin(launcher Launcher, args []string) *Plugin {
	return &Plugin{
		launcher:   launcher,
		args:       args,
		executable: Executable,
		newManager: New,
	}
}

// Name implements shell.Plugin.
func (p *Plugin) Name() string { return PluginName }

// Manager returns the manager created during Init, if any.
func (p *Plugin) Manager() Manager { return p.manager }

// Init implements shell.Plugin.
func (p *Plugin) Init(app *shell.App) error {
	cfg := app.Config()
	logger := app.Logger().With().Str("plugin", PluginName).Logger()

	exe, err := p.executable()
	if err != nil {
		logger.Warn().Err(err).Msg("autostart registration skipped")
		return nil
	}

	mgr, err := p.newManager(Options{
		Name:       cfg.ProductName,
		Identifier: cfg.Identifier,
		ExecPath:   exe,
		Args:       p.args,
		Launcher:   p.launcher,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("autostart registration skipped")
		return nil
	}
	p.manager = mgr

	if !cfg.Autostart.Enabled {
		if err := mgr.Disable(); err != nil {
			logger.Warn().Err(err).Str("location", mgr.Location()).Msg("autostart removal failed")
		}
		return nil
	}

	if err := mgr.Enable(); err != nil {
		logger.Warn().Err(err).Str("location", mgr.Location()).Msg("autostart registration failed")
		return nil
	}
	logger.Info().
		Str("launcher", p.launcher.String()).
		Str("location", mgr.Location()).
		Msg("registered for launch at login")
	return nil
}
