package app

import (
	"github.com/example/timeapp/internal/shell"
	"github.com/example/timeapp/internal/tray"
)

const (
	// TrayID names the application's only tray icon.
	TrayID = "main"
	// QuitID is the menu id that ends the application with status 0.
	QuitID = "quit"
	// QuitLabel is the text shown for QuitID.
	QuitLabel = "Quit"
)

// TraySetup registers the tray icon and its single Quit item.
func TraySetup(app *shell.App) error {
	quit, err := shell.NewMenuItem(QuitID, QuitLabel, true, "")
	if err != nil {
		return err
	}

	menu, err := shell.NewMenu(quit)
	if err != nil {
		return err
	}

	tooltip := app.Config().Tooltip
	if tooltip == "" {
		tooltip = app.Config().ProductName
	}

	return app.AddTray(shell.TrayIcon{
		ID:          TrayID,
		Menu:        menu,
		Icon:        tray.DefaultIcon(),
		Tooltip:     tooltip,
		OnMenuEvent: HandleMenuEvent,
	})
}

// HandleMenuEvent exits with status 0 on Quit and ignores everything else.
func HandleMenuEvent(app *shell.App, event shell.MenuEvent) {
	if event.ID != QuitID {
		app.Logger().Debug().Str("id", event.ID).Msg("ignoring menu event")
		return
	}
	app.Exit(0)
}
