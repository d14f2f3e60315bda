package autostart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/example/timeapp/internal/config"
)

func TestParseLauncher(t *testing.T) {
	l, err := ParseLauncher("")
	require.NoError(t, err)
	assert.Equal(t, LaunchAgent, l)

	l, err = ParseLauncher("AppleScript")
	require.NoError(t, err)
	assert.Equal(t, AppleScript, l)

	_, err = ParseLauncher("cron")
	assert.Error(t, err)
	assert.Equal(t, "launchagent", LaunchAgent.String())
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{Name: "TimeApp", Identifier: "com.timeapp"})
	assert.Error(t, err)

	_, err = New(Options{Identifier: "com.timeapp", ExecPath: "/bin/timeapp"})
	assert.Error(t, err)
}

func TestRenderLaunchAgentEscapesValues(t *testing.T) {
	program := []string{"/Applications/Time & Co.app/Contents/MacOS/timeapp", "--flag=<x>"}
	raw, err := renderLaunchAgent("com.timeapp.desktop", program)
	require.NoError(t, err)

	out := string(raw)
	assert.Contains(t, out, "<!DOCTYPE plist")
	assert.Contains(t, out, "Time &amp; Co.app")
	assert.Contains(t, out, "--flag=&lt;x")

	var agent launchAgent
	_, err = plist.Unmarshal(raw, &agent)
	require.NoError(t, err)
	assert.Equal(t, launchAgent{
		Label:            "com.timeapp.desktop",
		ProgramArguments: program,
		RunAtLoad:        true,
		ProcessType:      "Interactive",
	}, agent)
}

func TestLaunchAgentManagerLifecycle(t *testing.T) {
	home := t.TempDir()
	mgr, err := newLaunchAgentManager(Options{
		Name:       "TimeApp",
		Identifier: "com.timeapp.desktop",
		ExecPath:   "/usr/local/bin/timeapp",
		HomeDir:    home,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "LaunchAgents", "com.timeapp.desktop.plist"), mgr.Location())

	enabled, err := mgr.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, mgr.Enable())
	require.NoError(t, mgr.Enable())
	enabled, err = mgr.IsEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	raw, err := os.ReadFile(mgr.Location())
	require.NoError(t, err)
	var agent launchAgent
	_, err = plist.Unmarshal(raw, &agent)
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/local/bin/timeapp"}, agent.ProgramArguments)

	require.NoError(t, mgr.Disable())
	require.NoError(t, mgr.Disable())
	enabled, err = mgr.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestDesktopEntryQuotesExec(t *testing.T) {
	out := string(renderDesktopEntry("Time App", []string{"/opt/time app/timeapp", "--mode=quiet", "100%"}))
	assert.Contains(t, out, "Name=Time App\n")
	assert.Contains(t, out, `Exec="/opt/time app/timeapp" "--mode=quiet" "100%%"`+"\n")
	assert.Contains(t, out, "X-GNOME-Autostart-enabled=true\n")
}

func TestQuoteExecArg(t *testing.T) {
	assert.Equal(t, "/usr/bin/timeapp", quoteExecArg("/usr/bin/timeapp"))
	assert.Equal(t, `""`, quoteExecArg(""))
	assert.Equal(t, `"a\\"b"`, quoteExecArg(`a"b`))
	assert.Equal(t, `"\\$HOME"`, quoteExecArg("$HOME"))
	assert.Equal(t, `"/opt/a\\\\b"`, quoteExecArg(`/opt/a\b`))
	assert.Equal(t, `"line\none"`, quoteExecArg("line\none"))
}

func TestDesktopEntryEscapesName(t *testing.T) {
	out := string(renderDesktopEntry(`Time\App`, []string{"/usr/bin/timeapp"}))
	assert.Contains(t, out, `Name=Time\\App`+"\n")
	assert.Contains(t, out, "Exec=/usr/bin/timeapp\n")
}

func TestXDGManagerUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	mgr, err := newXDGManager(Options{
		Name:       "Time App",
		Identifier: "com.timeapp.desktop",
		ExecPath:   "/usr/bin/timeapp",
		ConfigDir:  dir,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "autostart", "time-app.desktop"), mgr.Location())

	require.NoError(t, mgr.Enable())
	raw, err := os.ReadFile(mgr.Location())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Exec=/usr/bin/timeapp\n")
}

func TestXDGConfigHomeEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := Options{}.configDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestLauncherNamesMatchConfig(t *testing.T) {
	assert.Equal(t, string(config.LauncherAppleScript), AppleScript.String())
}
