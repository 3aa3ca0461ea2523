package orion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/go3d/pulse"
)

//go:generate go tool stringer -type=State -trimprefix=State

type State int

const (
	StateUninitialized State = iota
	StateWindowReady
	StateDeviceReady
	StateSceneReady
	StateRunning
	StateReleased
)

// Device is the graphics device a Pipeline renders with.
// It is implemented by pulse.Renderer.
type Device interface {
	Open(surface pulse.SurfaceSource, opts pulse.DeviceOptions) error

	CreateBuffer(desc pulse.BufferDescriptor) (pulse.Releaser, error)
	CreateProgram(desc pulse.ProgramDescriptor) (pulse.Releaser, error)
	CreateBindings(desc pulse.BindingsDescriptor) (pulse.Releaser, error)

	Clear(values pulse.ClearValues) error
	Draw(call pulse.DrawCall) error
	Present() error

	Close()
}

// Surface is the window a Pipeline presents to.
type Surface interface {
	pulse.SurfaceSource
	GetSize() (uint32, uint32)
}

type PipelineOptions struct {
	// 1 or 4, zero means 1
	SampleCount uint32

	// attach a depth buffer and enable the less-than depth test
	Depth bool

	// prefer the immediate present mode over fifo
	Immediate bool

	// request the software fallback adapter
	FallbackAdapter bool

	ClearColor pulse.Color
	ClearDepth float32
}

type Uniform struct {
	Label   string
	Binding uint32

	// dynamic uniforms stay writable by the cpu
	Dynamic bool

	Contents []byte
}

// Scene is the fixed geometry and shader program drawn every frame.
type Scene struct {
	Label string

	// path of the side loaded WGSL source
	ShaderPath string

	// default to VS and PS
	VertexEntry   string
	FragmentEntry string

	Layout      []pulse.VertexElement
	Vertices    []byte
	VertexCount uint32

	// optional, the scene is drawn indexed if set
	Indices []uint16

	Uniforms []Uniform
}

// Pipeline drives a Device through initialize, (update, render)* and release.
// Every resource it creates is owned by the pipeline and released exactly
// once, in reverse order of creation, before the device itself.
type Pipeline struct {
	device Device
	opts   PipelineOptions
	state  State

	surface Surface
	opened  bool

	// owned resources in creation order
	resources []pulse.Releaser

	draw    *pulse.DrawCall
	clear   pulse.ClearValues
	timings FrameTimes
}

func NewPipeline(device Device, opts PipelineOptions) *Pipeline {
	if opts.SampleCount == 0 {
		opts.SampleCount = 1
	}

	return &Pipeline{
		device: device,
		opts:   opts,
		clear: pulse.ClearValues{
			Color: opts.ClearColor,
			Depth: opts.ClearDepth,
		},
	}
}

func (p *Pipeline) State() State {
	return p.state
}

func (p *Pipeline) expect(op string, states ...State) error {
	for _, state := range states {
		if p.state == state {
			return nil
		}
	}

	return fmt.Errorf("%s in state %s: %w", op, p.state, ErrInvalidState)
}

func (p *Pipeline) AttachWindow(surface Surface) error {
	if err := p.expect("attach window", StateUninitialized); err != nil {
		return err
	}

	p.surface = surface
	p.state = StateWindowReady

	return nil
}

// InitDevice opens the device sized to the attached window. On failure
// the pipeline is released.
func (p *Pipeline) InitDevice() error {
	if err := p.expect("init device", StateWindowReady); err != nil {
		return err
	}

	width, height := p.surface.GetSize()

	err := p.device.Open(p.surface, pulse.DeviceOptions{
		Width:  width,
		Height: height,
		ContextOptions: pulse.ContextOptions{
			FallbackAdapter: p.opts.FallbackAdapter,
		},
		ViewOptions: pulse.ViewOptions{
			SampleCount: p.opts.SampleCount,
			Depth:       p.opts.Depth,
			Immediate:   p.opts.Immediate,
		},
	})

	if err != nil {
		p.Release()
		return fmt.Errorf("init device: %w", err)
	}

	p.opened = true
	p.state = StateDeviceReady

	return nil
}

// InitScene creates the program, buffers and bindings of the scene.
// A nil scene only clears the backbuffer. The first failing step
// releases everything created so far, including the device.
func (p *Pipeline) InitScene(scene *Scene) error {
	if err := p.expect("init scene", StateDeviceReady); err != nil {
		return err
	}

	if scene != nil {
		draw, err := p.createScene(scene)
		if err != nil {
			p.Release()
			return fmt.Errorf("init scene %q: %w", scene.Label, err)
		}

		p.draw = draw
	}

	p.state = StateSceneReady

	return nil
}

func (p *Pipeline) own(resource pulse.Releaser) pulse.Releaser {
	p.resources = append(p.resources, resource)
	return resource
}

func (p *Pipeline) createScene(scene *Scene) (*pulse.DrawCall, error) {
	vertexEntry := scene.VertexEntry
	if vertexEntry == "" {
		vertexEntry = "VS"
	}

	fragmentEntry := scene.FragmentEntry
	if fragmentEntry == "" {
		fragmentEntry = "PS"
	}

	source, err := pulse.LoadShaderSource(scene.ShaderPath)
	if err != nil {
		return nil, err
	}

	layout, err := pulse.NewVertexLayout(scene.Layout...)
	if err != nil {
		return nil, fmt.Errorf("input layout: %w", err)
	}

	program, err := p.device.CreateProgram(pulse.ProgramDescriptor{
		Label:         scene.Label,
		Source:        source,
		VertexEntry:   vertexEntry,
		FragmentEntry: fragmentEntry,
		Layout:        layout,
	})
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	call := &pulse.DrawCall{
		Program: p.own(program),
		Count:   scene.VertexCount,
	}

	vertices, err := p.device.CreateBuffer(pulse.BufferDescriptor{
		Label:    scene.Label + " vertices",
		Usage:    pulse.BufferVertex,
		Contents: scene.Vertices,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	call.Vertices = p.own(vertices)

	if len(scene.Indices) > 0 {
		indices, err := p.device.CreateBuffer(pulse.BufferDescriptor{
			Label:    scene.Label + " indices",
			Usage:    pulse.BufferIndex,
			Contents: pulse.SliceAsBytes(scene.Indices),
		})
		if err != nil {
			return nil, fmt.Errorf("create index buffer: %w", err)
		}

		call.Indices = p.own(indices)
		call.Count = uint32(len(scene.Indices))
	}

	if len(scene.Uniforms) > 0 {
		var entries []pulse.BindingEntry

		for _, uniform := range scene.Uniforms {
			buffer, err := p.device.CreateBuffer(pulse.BufferDescriptor{
				Label:    uniform.Label,
				Usage:    pulse.BufferUniform,
				Dynamic:  uniform.Dynamic,
				Contents: uniform.Contents,
			})
			if err != nil {
				return nil, fmt.Errorf("create uniform buffer %q: %w", uniform.Label, err)
			}

			entries = append(entries, pulse.BindingEntry{
				Binding: uniform.Binding,
				Buffer:  p.own(buffer),
			})
		}

		bindings, err := p.device.CreateBindings(pulse.BindingsDescriptor{
			Label:   scene.Label + " bindings",
			Program: program,
			Entries: entries,
		})
		if err != nil {
			return nil, fmt.Errorf("create bindings: %w", err)
		}

		call.Bindings = p.own(bindings)
	}

	slog.Info("Scene ready",
		slog.String("label", scene.Label),
		slog.Int("resources", len(p.resources)),
		slog.Int("count", int(call.Count)),
		slog.Bool("indexed", call.Indices != nil),
	)

	return call, nil
}

// Update advances the scene. The scene is static, so this only checks the state.
func (p *Pipeline) Update() error {
	return p.expect("update", StateSceneReady, StateRunning)
}

// Render clears the targets, issues the single draw call of the scene
// and presents the frame.
func (p *Pipeline) Render() error {
	if err := p.expect("render", StateSceneReady, StateRunning); err != nil {
		return err
	}

	p.state = StateRunning

	if p.timings.Tick(time.Now()) {
		slog.Debug("Frame times", slog.Any("times", &p.timings))
	}

	if err := p.device.Clear(p.clear); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	if p.draw != nil {
		if err := p.device.Draw(*p.draw); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}

	if err := p.device.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	return nil
}

// Release releases all owned resources in reverse order of creation
// and closes the device. Calling Release again has no effect.
func (p *Pipeline) Release() {
	if p.state == StateReleased {
		return
	}

	for idx := len(p.resources) - 1; idx >= 0; idx-- {
		p.resources[idx].Release()
	}

	p.resources = nil
	p.draw = nil

	if p.opened {
		p.device.Close()
		p.opened = false
	}

	p.surface = nil
	p.state = StateReleased

	slog.Debug("Pipeline released", slog.Uint64("frames", p.timings.FrameCount))
}
