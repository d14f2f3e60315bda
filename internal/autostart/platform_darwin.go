//go:build darwin

package autostart

func newPlatformManager(opts Options) (Manager, error) {
	if opts.Launcher == AppleScript {
		return newAppleScriptManager(opts), nil
	}
	return newLaunchAgentManager(opts)
}
