package orion

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/oliverbestmann/go3d/glimpse"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueWindow quits after a number of idle polls.
type queueWindow struct {
	queue     []glimpse.Message
	handler   glimpse.Handler
	quitAfter int

	polls      int
	terminated int
}

func (w *queueWindow) Peek() (glimpse.Message, bool) {
	if len(w.queue) == 0 {
		w.polls++
		if w.polls > w.quitAfter {
			return glimpse.Message{Kind: glimpse.MessageQuit, Code: 0}, true
		}

		return glimpse.Message{}, false
	}

	msg := w.queue[0]
	w.queue = w.queue[1:]
	return msg, true
}

func (w *queueWindow) Dispatch(msg glimpse.Message) {
	if w.handler != nil {
		w.handler(msg)
	}
}

func (w *queueWindow) PostQuit(code int) {
	w.queue = append(w.queue, glimpse.Message{Kind: glimpse.MessageQuit, Code: code})
}

func (w *queueWindow) Destroy() {
	w.handler(glimpse.Message{Kind: glimpse.MessageDestroy})
}

func (w *queueWindow) SetHandler(handler glimpse.Handler)         { w.handler = handler }
func (w *queueWindow) GetSize() (uint32, uint32)                  { return 800, 600 }
func (w *queueWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *queueWindow) Terminate()                                 { w.terminated++ }

type recordingDialog struct {
	answer bool
	errors []string
}

func (d *recordingDialog) Confirm(title, text string) bool {
	return d.answer
}

func (d *recordingDialog) Error(title, text string) {
	d.errors = append(d.errors, title+": "+text)
}

func windowFactory(win *queueWindow, opts *glimpse.WindowOptions) func(glimpse.WindowOptions) (glimpse.Window, error) {
	return func(o glimpse.WindowOptions) (glimpse.Window, error) {
		if opts != nil {
			*opts = o
		}

		return win, nil
	}
}

func TestRunRendersUntilQuit(t *testing.T) {
	win := &queueWindow{quitAfter: 5}
	device := &recordingDevice{}

	var windowOpts glimpse.WindowOptions

	code, err := Run(RunOptions{
		Scene:     testScene(t),
		NewWindow: windowFactory(win, &windowOpts),
		Dialog:    &recordingDialog{},
		Device:    device,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)

	assert.Equal(t, 800, windowOpts.Width)
	assert.Equal(t, 600, windowOpts.Height)

	assert.Equal(t, 5, device.clears)
	assert.Equal(t, 5, device.presents)
	assert.Equal(t, 1, device.closes)
	assert.Equal(t, 1, win.terminated)

	for _, res := range device.resources {
		assert.Equal(t, 1, res.releases, res.name)
	}
}

func TestRunEscapeConfirmedQuits(t *testing.T) {
	win := &queueWindow{
		queue:     []glimpse.Message{{Kind: glimpse.MessageKeyDown, Key: glimpse.KeyEscape}},
		quitAfter: 100,
	}

	device := &recordingDevice{}

	code, err := Run(RunOptions{
		NewWindow: windowFactory(win, nil),
		Dialog:    &recordingDialog{answer: true},
		Device:    device,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Zero(t, device.clears)
	assert.Equal(t, 1, device.closes)
}

func TestRunWindowOnlyHasNoDevice(t *testing.T) {
	win := &queueWindow{quitAfter: 3}
	device := &recordingDevice{}

	code, err := Run(RunOptions{
		WindowOnly: true,
		NewWindow:  windowFactory(win, nil),
		Dialog:     &recordingDialog{},
		Device:     device,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Zero(t, device.opens)
	assert.Empty(t, device.log)
}

func TestRunWindowFailureIsFatal(t *testing.T) {
	_, err := Run(RunOptions{
		NewWindow: func(glimpse.WindowOptions) (glimpse.Window, error) {
			return nil, glimpse.ErrRegisterClass
		},
		Dialog: &recordingDialog{},
		Device: &recordingDevice{},
	})

	var fe *FatalError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Create window", fe.Op)
	assert.ErrorIs(t, err, glimpse.ErrRegisterClass)
}

func TestMainShowsFatalErrorAndFails(t *testing.T) {
	win := &queueWindow{quitAfter: 5}
	dialog := &recordingDialog{}
	device := &recordingDevice{failOn: "quad vertices"}

	code := Main(Config{}, RunOptions{
		Scene:     testScene(t),
		NewWindow: windowFactory(win, nil),
		Dialog:    dialog,
		Device:    device,
	})

	assert.Equal(t, ExitFailure, code)
	require.Len(t, dialog.errors, 1)
	assert.Contains(t, dialog.errors[0], "Error: Init scene - Failed")
	assert.Contains(t, dialog.errors[0], "out of memory")

	assert.Equal(t, 1, device.closes)
	assert.Equal(t, 1, win.terminated)
}

func TestMainPassesQuitCode(t *testing.T) {
	win := &queueWindow{queue: []glimpse.Message{{Kind: glimpse.MessageQuit, Code: 4}}}

	code := Main(Config{WindowDriver: "glfw"}, RunOptions{
		WindowOnly: true,
		NewWindow:  windowFactory(win, nil),
		Dialog:     &recordingDialog{},
	})

	assert.Equal(t, 4, code)
}

func TestFatalKeepsInnermostOperation(t *testing.T) {
	inner := fatal("Init device", errors.New("no adapter"))
	outer := fatal("Render", inner)

	var fe *FatalError
	require.ErrorAs(t, outer, &fe)
	assert.Equal(t, "Init device", fe.Op)
	assert.Equal(t, "Init device - Failed: no adapter", describeFatal(outer))

	assert.NoError(t, fatal("Render", nil))
}

func TestConfigFromLookup(t *testing.T) {
	env := map[string]string{
		"GO3D_LOG_LEVEL":     "DEBUG",
		"GO3D_SHADER_DIR":    "/opt/shaders",
		"GO3D_PROFILE":       "cpu",
		"GO3D_WINDOW_DRIVER": "GLFW",

		"WGPU_LOG_LEVEL":              "warn",
		"WGPU_FORCE_FALLBACK_ADAPTER": "1",
	}

	config := configFromLookup(func(key string) string { return env[key] })

	assert.Equal(t, Config{
		LogLevel:     slog.LevelDebug,
		ShaderDir:    "/opt/shaders",
		Profile:      "cpu",
		WindowDriver: "glfw",

		WGPULogLevel:    "warn",
		FallbackAdapter: true,
	}, config)

	defaults := configFromLookup(func(string) string { return "" })
	assert.Equal(t, "shaders", defaults.ShaderDir)
	assert.Empty(t, defaults.Profile)
	assert.Equal(t, slog.LevelInfo, defaults.LogLevel)
	assert.False(t, defaults.FallbackAdapter)
}

func TestRunForwardsWindowShow(t *testing.T) {
	win := &queueWindow{}

	var windowOpts glimpse.WindowOptions

	_, err := Run(RunOptions{
		WindowOnly:   true,
		WindowShow:   3,
		WindowDriver: "win32",
		NewWindow:    windowFactory(win, &windowOpts),
		Dialog:       &recordingDialog{},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, windowOpts.Show)
	assert.Equal(t, "win32", windowOpts.Driver)
}

func TestMainRequestsFallbackAdapter(t *testing.T) {
	win := &queueWindow{quitAfter: 1}
	device := &recordingDevice{}

	code := Main(Config{FallbackAdapter: true}, RunOptions{
		NewWindow: windowFactory(win, nil),
		Dialog:    &recordingDialog{},
		Device:    device,
	})

	assert.Equal(t, 0, code)
	assert.True(t, device.openOpts.FallbackAdapter)
}
