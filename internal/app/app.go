// Package app holds the two composition roots of the desktop shell: the
// library entry, which only adds debug logging, and the desktop entry, which
// adds login-time autostart and the tray icon.
package app

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/example/timeapp/internal/autostart"
	"github.com/example/timeapp/internal/config"
	"github.com/example/timeapp/internal/logging"
	"github.com/example/timeapp/internal/shell"
)

// Options controls how an entry point is assembled.
type Options struct {
	Config  *config.Config
	Runtime shell.Runtime
	// Debug attaches the logging plugin. Defaults to config.Debug().
	Debug *bool
	// Logger is used until a logging plugin replaces it.
	Logger zerolog.Logger
	// NewAutostart builds the autostart plugin. Defaults to autostart.NewPlugin.
	NewAutostart func(launcher autostart.Launcher, args []string) shell.Plugin
}

func (o Options) debug() bool {
	if o.Debug != nil {
		return *o.Debug
	}
	return config.Debug()
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

func (o Options) autostart(launcher autostart.Launcher, args []string) shell.Plugin {
	if o.NewAutostart != nil {
		return o.NewAutostart(launcher, args)
	}
	return autostart.NewPlugin(launcher, args)
}

func loggingPlugin(cfg *config.Config) *logging.Plugin {
	opts := logging.Options{
		Console:    consoleWriter(),
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
	if opts.File != "" && !filepath.IsAbs(opts.File) {
		if path, err := config.Path(); err == nil {
			opts.File = filepath.Join(filepath.Dir(path), opts.File)
		}
	}
	return logging.NewPlugin(zerolog.InfoLevel, opts)
}
