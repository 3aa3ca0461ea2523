package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var ErrNoAdapter = errors.New("no compatible adapter")

func init() {
	runtime.LockOSThread()
}

var logLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

// ParseLogLevel maps a level name like "warn" to the native wgpu log level.
func ParseLogLevel(name string) (wgpu.LogLevel, bool) {
	level, ok := logLevels[strings.ToUpper(name)]
	return level, ok
}

// SetLogLevel sets the log level of the native wgpu library. An empty or
// unknown name keeps the library default.
func SetLogLevel(name string) {
	if name == "" {
		return
	}

	level, ok := ParseLogLevel(name)
	if !ok {
		slog.Warn("Unknown wgpu log level", slog.String("level", name))
		return
	}

	wgpu.SetLogLevel(level)
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

type ContextOptions struct {
	// request the software fallback adapter
	FallbackAdapter bool
}

func NewContext(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (*Context, error) {
	if sd == nil {
		return nil, errors.New("no surface descriptor")
	}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx := &Context{Surface: instance.CreateSurface(sd)}

	if err := ctx.requestDevice(instance, opts); err != nil {
		ctx.Release()
		return nil, err
	}

	return ctx, nil
}

func (d *Context) requestDevice(instance *wgpu.Instance, opts ContextOptions) error {
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.FallbackAdapter,
		CompatibleSurface:    d.Surface,
	})

	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	d.Adapter = adapter

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}

	d.Device = device
	d.Queue = device.GetQueue()

	return nil
}

// Release releases queue, device, adapter and surface in this order.
// Fields that were never created are skipped.
func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
