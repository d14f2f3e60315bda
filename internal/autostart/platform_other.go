//go:build !darwin && !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package autostart

func newPlatformManager(Options) (Manager, error) {
	return nil, ErrUnsupported
}
