package shell

// Runtime is the event loop and tray surface the shell runs on.
//
// Run blocks until Quit is called. onReady is invoked once the loop is able to
// accept tray registrations and onExit after it has stopped accepting events.
type Runtime interface {
	Run(onReady func(), onExit func()) error
	Quit()
	SetTray(icon TrayIcon, dispatch func(MenuEvent)) error
}
