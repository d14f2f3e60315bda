package app

import (
	"context"

	"github.com/example/timeapp/internal/autostart"
	"github.com/example/timeapp/internal/shell"
)

// NewDesktop assembles the executable entry: login-time autostart, the tray
// icon with its Quit item and, in debug builds, the logging plugin.
func NewDesktop(opts Options) *shell.Builder {
	cfg := opts.config()
	b := shell.NewBuilder(opts.Runtime).Logger(opts.Logger)
	if opts.debug() {
		b.Plugin(loggingPlugin(cfg))
	}

	launcher, err := autostart.ParseLauncher(cfg.Autostart.Launcher)
	if err != nil {
		opts.Logger.Warn().Err(err).Msg("falling back to launch agent")
	}
	b.Plugin(opts.autostart(launcher, cfg.Autostart.Args))

	return b.Setup(TraySetup)
}

// RunDesktop runs the executable entry until the user quits from the tray.
func RunDesktop(ctx context.Context, opts Options) (int, error) {
	return NewDesktop(opts).Run(ctx, opts.config())
}
