package autostart

import (
	"fmt"
	"path/filepath"

	"howett.net/plist"
)

// launchAgent is the property list launchd reads from ~/Library/LaunchAgents.
type launchAgent struct {
	Label            string   `plist:"Label"`
	ProgramArguments []string `plist:"ProgramArguments"`
	RunAtLoad        bool     `plist:"RunAtLoad"`
	ProcessType      string   `plist:"ProcessType"`
}

func renderLaunchAgent(label string, program []string) ([]byte, error) {
	agent := launchAgent{
		Label:            label,
		ProgramArguments: program,
		RunAtLoad:        true,
		ProcessType:      "Interactive",
	}
	raw, err := plist.MarshalIndent(agent, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("render launch agent: %w", err)
	}
	return append(raw, '\n'), nil
}

func newLaunchAgentManager(opts Options) (*fileManager, error) {
	home, err := opts.homeDir()
	if err != nil {
		return nil, err
	}

	program := append([]string{opts.ExecPath}, opts.Args...)
	content, err := renderLaunchAgent(opts.Identifier, program)
	if err != nil {
		return nil, err
	}

	return &fileManager{
		path:    filepath.Join(home, "Library", "LaunchAgents", opts.Identifier+".plist"),
		content: content,
	}, nil
}
