package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/timeapp/internal/app"
	"github.com/example/timeapp/internal/config"
	"github.com/example/timeapp/internal/logging"
	"github.com/example/timeapp/internal/shell"
	"github.com/example/timeapp/internal/tray"
)

const fatalMessage = "error while running timeapp application"

type globalFlags struct {
	configPath string
	console    bool
}

type entryFunc func(ctx context.Context, opts app.Options) (int, error)

// newRuntime is replaced in tests.
var newRuntime = func() shell.Runtime { return tray.New() }

// showErrorDialog is replaced in tests.
var showErrorDialog = func(title, message string) {
	_ = zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "timeapp",
		Short:         "TimeApp tray shell",
		Long:          "Runs the TimeApp tray icon and registers it to launch at login.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEntry(cmd, flags, app.RunDesktop)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to the configuration file")
	root.PersistentFlags().BoolVar(&flags.console, "console", false, "keep the console window visible on Windows")
	_ = root.PersistentFlags().MarkHidden("console")

	root.AddCommand(
		newShellCmd(flags),
		newAutostartCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)
	return root
}

func newShellCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the bare application shell without tray or autostart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEntry(cmd, flags, app.RunLibrary)
		},
	}
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.LoadFile(flags.configPath)
	}
	return config.Load()
}

func runEntry(cmd *cobra.Command, flags *globalFlags, entry entryFunc) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := startupLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := entry(ctx, app.Options{
		Config:  cfg,
		Runtime: newRuntime(),
		Logger:  logger,
	})
	if err != nil {
		log.Printf("%s: %v", fatalMessage, err)
		showErrorDialog(cfg.ProductName, fmt.Sprintf("%s: %v", fatalMessage, err))
		return &exitError{code: 1}
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// startupLogger writes to stderr at the configured log.level until a logging
// plugin takes over. Release builds never get that plugin, so this is the only
// output they produce.
func startupLogger(cfg *config.Config) (zerolog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}
	return logging.Console(level), nil
}
