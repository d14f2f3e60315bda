package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/timeapp/internal/autostart"
	"github.com/example/timeapp/internal/config"
)

func newAutostartCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Inspect or change the launch-at-login registration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Report whether TimeApp launches at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				mgr, err := autostartManager(flags)
				if err != nil {
					return err
				}
				enabled, err := mgr.IsEnabled()
				if err != nil {
					return err
				}
				state := "disabled"
				if enabled {
					state = "enabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", state, mgr.Location())
				return nil
			},
		},
		&cobra.Command{
			Use:   "enable",
			Short: "Register TimeApp to launch at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				mgr, err := autostartManager(flags)
				if err != nil {
					return err
				}
				if err := mgr.Enable(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Enabled launch at login: %s\n", mgr.Location())
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Stop TimeApp from launching at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				mgr, err := autostartManager(flags)
				if err != nil {
					return err
				}
				if err := mgr.Disable(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Disabled launch at login: %s\n", mgr.Location())
				return nil
			},
		},
	)
	return cmd
}

// autostartExecutable is replaced in tests.
var autostartExecutable = autostart.Executable

func autostartManager(flags *globalFlags) (autostart.Manager, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	launcher, err := autostart.ParseLauncher(cfg.Autostart.Launcher)
	if err != nil {
		return nil, err
	}
	exe, err := autostartExecutable()
	if err != nil {
		return nil, err
	}
	return autostart.New(autostart.Options{
		Name:       cfg.ProductName,
		Identifier: cfg.Identifier,
		ExecPath:   exe,
		Args:       cfg.Autostart.Args,
		Launcher:   launcher,
	})
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.SaveFile(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := configPath(flags)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		initCmd,
	)
	return cmd
}

func configPath(flags *globalFlags) (string, error) {
	if flags.configPath != "" {
		return flags.configPath, nil
	}
	return config.Path()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timeapp %s (%s)\n", config.Version, config.Mode())
		},
	}
}
