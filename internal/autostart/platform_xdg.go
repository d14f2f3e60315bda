//go:build linux || freebsd || openbsd || netbsd || dragonfly

package autostart

func newPlatformManager(opts Options) (Manager, error) {
	return newXDGManager(opts)
}
