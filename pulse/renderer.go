package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var ErrNotOpen = errors.New("renderer is not open")
var ErrAlreadyOpen = errors.New("renderer is already open")
var ErrForeignResource = errors.New("resource was not created by this renderer")
var ErrNoFrame = errors.New("no frame in progress")
var ErrFrameInProgress = errors.New("frame already in progress")

// SurfaceSource is implemented by windows that webgpu can present to.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

type DeviceOptions struct {
	Width  uint32
	Height uint32

	ContextOptions
	ViewOptions
}

type DrawCall struct {
	Program  Releaser
	Bindings Releaser
	Vertices Releaser

	// optional, the call is indexed if set
	Indices Releaser

	// number of vertices or indices to draw
	Count uint32
}

// Renderer owns the webgpu device, the swapchain and its render targets.
// It creates the resources of a scene and records one render pass per frame:
// Clear begins the frame, Draw records into it and Present submits it.
type Renderer struct {
	ctx   *Context
	view  *View
	cache *PipelineCache[programConfig]

	frame *frame
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Open(surface SurfaceSource, opts DeviceOptions) error {
	if r.ctx != nil {
		return ErrAlreadyOpen
	}

	// initialize the webgpu device
	ctx, err := NewContext(surface.SurfaceDescriptor(), opts.ContextOptions)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	// initialize the view
	view, err := NewView(ctx, opts.ViewOptions)
	if err != nil {
		ctx.Release()
		return fmt.Errorf("create view: %w", err)
	}

	if err := view.Configure(opts.Width, opts.Height); err != nil {
		view.Release()
		ctx.Release()
		return fmt.Errorf("configure surface: %w", err)
	}

	slog.Info("Device ready",
		slog.Int("width", int(opts.Width)),
		slog.Int("height", int(opts.Height)),
		slog.Int("samples", int(view.SampleCount())),
		slog.Bool("depth", view.Depth()),
	)

	r.ctx = ctx
	r.view = view
	r.cache = NewPipelineCache[programConfig](ctx)

	return nil
}

func (r *Renderer) CreateBuffer(desc BufferDescriptor) (Releaser, error) {
	if r.ctx == nil {
		return nil, ErrNotOpen
	}

	buffer, err := createBuffer(r.ctx, desc)
	if err != nil {
		return nil, err
	}

	slog.Debug("Buffer created",
		slog.String("label", buffer.Label()),
		slog.String("usage", desc.Usage.String()),
		slog.Uint64("size", buffer.Size()),
	)

	return buffer, nil
}

func (r *Renderer) CreateProgram(desc ProgramDescriptor) (Releaser, error) {
	if r.ctx == nil {
		return nil, ErrNotOpen
	}

	program, err := createProgram(r.view, r.cache, desc)
	if err != nil {
		return nil, err
	}

	return program, nil
}

func (r *Renderer) CreateBindings(desc BindingsDescriptor) (Releaser, error) {
	if r.ctx == nil {
		return nil, ErrNotOpen
	}

	bindings, err := createBindings(r.ctx, desc)
	if err != nil {
		return nil, err
	}

	return bindings, nil
}

// Clear begins a new frame by clearing the color and depth targets.
func (r *Renderer) Clear(values ClearValues) error {
	if r.ctx == nil {
		return ErrNotOpen
	}

	if r.frame != nil {
		return ErrFrameInProgress
	}

	fr, err := r.view.beginFrame(values)
	if err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}

	r.frame = fr

	return nil
}

func (r *Renderer) Draw(call DrawCall) error {
	if r.frame == nil {
		return ErrNoFrame
	}

	program, ok := call.Program.(*Program)
	if !ok {
		return fmt.Errorf("draw program: %w", ErrForeignResource)
	}

	vertices, ok := call.Vertices.(*Buffer)
	if !ok {
		return fmt.Errorf("draw vertices: %w", ErrForeignResource)
	}

	pass := r.frame.pass
	pass.SetPipeline(program.cached.Pipeline)

	if call.Bindings != nil {
		bindings, ok := call.Bindings.(*Bindings)
		if !ok {
			return fmt.Errorf("draw bindings: %w", ErrForeignResource)
		}

		pass.SetBindGroup(0, bindings.group, nil)
	}

	pass.SetVertexBuffer(0, vertices.buffer, 0, wgpu.WholeSize)

	if call.Indices == nil {
		pass.Draw(call.Count, 1, 0, 0)
		return nil
	}

	indices, ok := call.Indices.(*Buffer)
	if !ok {
		return fmt.Errorf("draw indices: %w", ErrForeignResource)
	}

	pass.SetIndexBuffer(indices.buffer, indices.indexFormat, 0, indices.size)
	pass.DrawIndexed(call.Count, 1, 0, 0, 0)

	return nil
}

// Present ends the frame, submits it and presents the surface.
func (r *Renderer) Present() error {
	if r.frame == nil {
		return ErrNoFrame
	}

	fr := r.frame
	r.frame = nil

	if err := r.view.presentFrame(fr); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}

	return nil
}

// Close releases the swapchain targets, all cached pipelines and the device.
// Resources created by the renderer must be released before.
func (r *Renderer) Close() {
	if r.frame != nil {
		r.frame.release()
		r.frame = nil
	}

	if r.cache != nil {
		slog.Debug("Release cached pipelines", slog.Int("count", r.cache.Len()))
		r.cache.Purge()
		r.cache = nil
	}

	if r.view != nil {
		r.view.Release()
		r.view = nil
	}

	if r.ctx != nil {
		r.ctx.Release()
		r.ctx = nil
	}
}
