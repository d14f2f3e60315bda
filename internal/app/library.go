package app

import (
	"context"

	"github.com/example/timeapp/internal/shell"
)

// NewLibrary assembles the library entry: a bare shell that only gains the
// logging plugin, at info level, in debug builds.
func NewLibrary(opts Options) *shell.Builder {
	b := shell.NewBuilder(opts.Runtime).Logger(opts.Logger)
	if opts.debug() {
		b.Plugin(loggingPlugin(opts.config()))
	}
	return b
}

// RunLibrary runs the library entry until the event loop stops.
func RunLibrary(ctx context.Context, opts Options) (int, error) {
	return NewLibrary(opts).Run(ctx, opts.config())
}
