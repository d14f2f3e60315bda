package app

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/timeapp/internal/autostart"
	"github.com/example/timeapp/internal/config"
	"github.com/example/timeapp/internal/logging"
	"github.com/example/timeapp/internal/shell"
	"github.com/example/timeapp/internal/shell/shelltest"
)

func TestMain(m *testing.M) {
	consoleWriter = func() io.Writer { return io.Discard }
	os.Exit(m.Run())
}

type autostartCall struct {
	launcher autostart.Launcher
	args     []string
}

type fakeAutostart struct {
	inits int
}

func (f *fakeAutostart) Name() string          { return autostart.PluginName }
func (f *fakeAutostart) Init(*shell.App) error { f.inits++; return nil }

type harness struct {
	rt        *shelltest.Runtime
	calls     []autostartCall
	autostart *fakeAutostart
}

func newHarness(debug bool) (*harness, Options) {
	h := &harness{rt: shelltest.NewRuntime(), autostart: &fakeAutostart{}}
	opts := Options{
		Config:  config.Default(),
		Runtime: h.rt,
		Debug:   &debug,
		Logger:  zerolog.Nop(),
		NewAutostart: func(launcher autostart.Launcher, args []string) shell.Plugin {
			h.calls = append(h.calls, autostartCall{launcher: launcher, args: args})
			return h.autostart
		},
	}
	return h, opts
}

type result struct {
	code int
	err  error
}

func start(run func() (int, error)) <-chan result {
	ch := make(chan result, 1)
	go func() {
		code, err := run()
		ch <- result{code: code, err: err}
	}()
	return ch
}

func wait(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("entry point did not return")
		return result{}
	}
}

func TestDesktopQuitExitsWithZero(t *testing.T) {
	h, opts := newHarness(false)
	results := start(func() (int, error) { return RunDesktop(context.Background(), opts) })

	require.NoError(t, h.rt.WaitReady(2*time.Second))
	require.NoError(t, h.rt.Click(QuitID))

	res := wait(t, results)
	require.NoError(t, res.err)
	assert.Equal(t, 0, res.code)
}

func TestDesktopTrayHasSingleQuitItem(t *testing.T) {
	h, opts := newHarness(false)
	results := start(func() (int, error) { return RunDesktop(context.Background(), opts) })
	require.NoError(t, h.rt.WaitReady(2*time.Second))

	icon, ok := h.rt.Tray()
	require.True(t, ok)
	items := icon.Menu.Items()
	require.Len(t, items, 1)
	assert.Equal(t, QuitID, items[0].ID)
	assert.Equal(t, QuitLabel, items[0].Label)
	assert.True(t, items[0].Enabled)
	assert.Empty(t, items[0].Accelerator)
	assert.NotEmpty(t, icon.Icon)
	assert.Equal(t, "TimeApp", icon.Tooltip)

	require.NoError(t, h.rt.Click(QuitID))
	wait(t, results)
}

func TestDesktopIgnoresUnknownMenuEvents(t *testing.T) {
	h, opts := newHarness(false)
	results := start(func() (int, error) { return RunDesktop(context.Background(), opts) })
	require.NoError(t, h.rt.WaitReady(2*time.Second))

	require.NoError(t, h.rt.Click("settings"))
	select {
	case res := <-results:
		t.Fatalf("desktop entry stopped after unknown event: %+v", res)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 0, h.rt.Quits())

	require.NoError(t, h.rt.Click(QuitID))
	assert.Equal(t, 0, wait(t, results).code)
}

func TestDesktopRegistersAutostartOnce(t *testing.T) {
	h, opts := newHarness(false)
	results := start(func() (int, error) { return RunDesktop(context.Background(), opts) })
	require.NoError(t, h.rt.WaitReady(2*time.Second))
	require.NoError(t, h.rt.Click(QuitID))
	wait(t, results)

	require.Len(t, h.calls, 1)
	assert.Equal(t, autostart.LaunchAgent, h.calls[0].launcher)
	assert.Nil(t, h.calls[0].args)
	assert.Equal(t, 1, h.autostart.inits)
}

func TestDesktopPluginsByBuildMode(t *testing.T) {
	_, release := newHarness(false)
	assert.Equal(t, []string{autostart.PluginName}, NewDesktop(release).PluginNames())

	_, debug := newHarness(true)
	assert.Equal(t, []string{logging.PluginName, autostart.PluginName}, NewDesktop(debug).PluginNames())
}

func TestLibraryPluginsByBuildMode(t *testing.T) {
	_, release := newHarness(false)
	assert.Empty(t, NewLibrary(release).PluginNames())

	_, debug := newHarness(true)
	assert.Equal(t, []string{logging.PluginName}, NewLibrary(debug).PluginNames())
}

// loggerLevel runs b until its setup callbacks finish and returns the level
// of the application logger at that point.
func loggerLevel(t *testing.T, b *shell.Builder, cfg *config.Config) zerolog.Level {
	t.Helper()
	var level zerolog.Level
	b.Setup(func(app *shell.App) error {
		level = app.Logger().GetLevel()
		app.Exit(0)
		return nil
	})

	code, err := b.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	return level
}

func TestLibraryDebugAttachesLoggingAtInfo(t *testing.T) {
	h, opts := newHarness(true)
	assert.Equal(t, zerolog.InfoLevel, loggerLevel(t, NewLibrary(opts), opts.Config))
	assert.True(t, h.rt.Stopped())
	assert.Empty(t, h.calls, "library entry must not register autostart")

	_, release := newHarness(false)
	assert.Equal(t, zerolog.Disabled, loggerLevel(t, NewLibrary(release), release.Config))
}

func TestDesktopDebugAttachesLoggingAtInfo(t *testing.T) {
	_, debug := newHarness(true)
	assert.Equal(t, zerolog.InfoLevel, loggerLevel(t, NewDesktop(debug), debug.Config))

	_, release := newHarness(false)
	assert.Equal(t, zerolog.Disabled, loggerLevel(t, NewDesktop(release), release.Config))
}

func TestLibraryReleaseRunsWithoutPlugins(t *testing.T) {
	h, opts := newHarness(false)
	ctx, cancel := context.WithCancel(context.Background())
	results := start(func() (int, error) { return RunLibrary(ctx, opts) })

	require.NoError(t, h.rt.WaitReady(2*time.Second))
	_, hasTray := h.rt.Tray()
	assert.False(t, hasTray)
	cancel()

	res := wait(t, results)
	require.NoError(t, res.err)
	assert.Equal(t, 0, res.code)
}

func TestStartupFailureIsReported(t *testing.T) {
	h, opts := newHarness(false)
	h.rt.RunErr = assert.AnError

	code, err := RunDesktop(context.Background(), opts)
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, code)
}

func TestHandleMenuEventIgnoresOtherIDs(t *testing.T) {
	h, opts := newHarness(false)
	b := shell.NewBuilder(h.rt).Setup(func(app *shell.App) error {
		HandleMenuEvent(app, shell.MenuEvent{ID: "about"})
		HandleMenuEvent(app, shell.MenuEvent{ID: "QUIT"})
		if h.rt.Quits() != 0 {
			t.Error("non-quit events must not stop the loop")
		}
		HandleMenuEvent(app, shell.MenuEvent{ID: QuitID})
		return nil
	})

	code, err := b.Run(context.Background(), opts.Config)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, h.rt.Quits())
}
