package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/go3d/glimpse"
	"github.com/oliverbestmann/go3d/pulse"
	"github.com/pkg/profile"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// forces a window driver, see glimpse.WindowOptions
	WindowDriver string

	// show command of the native window, see glimpse.WindowOptions
	WindowShow int

	// only pump messages, do not create a device
	WindowOnly bool

	Pipeline PipelineOptions

	// scene to draw, nil only clears the backbuffer
	Scene *Scene

	// optional hook that runs after every frame, see glimpse.Host
	FramePacing func()

	// overrides for the platform, mostly for tests
	NewWindow func(opts glimpse.WindowOptions) (glimpse.Window, error)
	Dialog    glimpse.Dialog
	Device    Device
}

func (opts RunOptions) withDefaults() RunOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "go3d"
	}

	if opts.NewWindow == nil {
		opts.NewWindow = glimpse.NewWindow
	}

	if opts.Dialog == nil {
		opts.Dialog = glimpse.SystemDialog()
	}

	if opts.Device == nil {
		opts.Device = pulse.NewRenderer()
	}

	return opts
}

// Run creates the window and the pipeline and runs the message loop until
// the window quits. It returns the exit code of the quit message. Failures
// are returned as *FatalError.
func Run(opts RunOptions) (int, error) {
	opts = opts.withDefaults()

	// create a new window
	win, err := opts.NewWindow(glimpse.WindowOptions{
		Width:  opts.WindowWidth,
		Height: opts.WindowHeight,
		Title:  opts.WindowTitle,
		Show:   opts.WindowShow,
		Driver: opts.WindowDriver,
	})
	if err != nil {
		return 0, fatal("Create window", err)
	}

	defer win.Terminate()

	host := glimpse.NewHost(win, opts.Dialog)
	host.SetFramePacing(opts.FramePacing)

	if opts.WindowOnly {
		code, err := host.Run(nil)
		return code, fatal("Run", err)
	}

	pipeline := NewPipeline(opts.Device, opts.Pipeline)

	// releases before the window terminates
	defer pipeline.Release()

	if err := pipeline.AttachWindow(win); err != nil {
		return 0, fatal("Attach window", err)
	}

	if err := pipeline.InitDevice(); err != nil {
		return 0, fatal("Init device", err)
	}

	if err := pipeline.InitScene(opts.Scene); err != nil {
		return 0, fatal("Init scene", err)
	}

	code, err := host.Run(pipeline)
	if err != nil {
		return 0, fatal("Render", err)
	}

	return code, nil
}

// Main configures logging and profiling, runs the snapshot and returns the
// process exit code. Fatal errors are shown in a blocking message box.
func Main(config Config, opts RunOptions) int {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: config.LogLevel})
	slog.SetDefault(slog.New(handler))

	if prof := startProfile(config.Profile); prof != nil {
		defer prof.Stop()
	}

	pulse.SetLogLevel(config.WGPULogLevel)

	if opts.WindowDriver == "" {
		opts.WindowDriver = config.WindowDriver
	}

	if config.FallbackAdapter {
		opts.Pipeline.FallbackAdapter = true
	}

	if opts.Dialog == nil {
		opts.Dialog = glimpse.SystemDialog()
	}

	code, err := Run(opts)
	if err != nil {
		slog.Error("Fatal error", slog.Any("err", err))
		opts.Dialog.Error("Error", describeFatal(err))
		return ExitFailure
	}

	return code
}

func describeFatal(err error) string {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s - Failed: %s", fe.Op, fe.Err)
	}

	return err.Error()
}

func startProfile(mode string) interface{ Stop() } {
	var option func(*profile.Profile)

	switch mode {
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfile
	case "trace":
		option = profile.TraceProfile
	case "":
		return nil
	default:
		slog.Warn("Unknown profile mode", slog.String("mode", mode))
		return nil
	}

	return profile.Start(option, profile.ProfilePath("."), profile.NoShutdownHook)
}
