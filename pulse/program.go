package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type ProgramDescriptor struct {
	Label string

	// WGSL source, usually loaded with LoadShaderSource
	Source string

	VertexEntry   string
	FragmentEntry string

	Layout   VertexLayout
	Topology wgpu.PrimitiveTopology
}

// Program is a compiled vertex and fragment shader pair together with its
// input layout and the fixed function state of the View it renders to.
type Program struct {
	cache  *PipelineCache[programConfig]
	config programConfig
	cached CachedPipeline
}

type programConfig struct {
	module *wgpu.ShaderModule

	label         string
	vertexEntry   string
	fragmentEntry string
	layout        VertexLayout
	topology      wgpu.PrimitiveTopology

	format      wgpu.TextureFormat
	sampleCount uint32
	depth       bool
}

func (c programConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	desc := &wgpu.RenderPipelineDescriptor{
		Label: c.label,
		Vertex: wgpu.VertexState{
			Module:     c.module,
			EntryPoint: c.vertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{c.layout.toWGPU()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     c.module,
			EntryPoint: c.fragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    c.format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  c.topology,
			FrontFace: wgpu.FrontFaceCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  c.sampleCount,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	if c.depth {
		desc.DepthStencil = &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: wgpu.OptionalBoolTrue,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare:     wgpu.CompareFunctionAlways,
				FailOp:      wgpu.StencilOperationKeep,
				DepthFailOp: wgpu.StencilOperationKeep,
				PassOp:      wgpu.StencilOperationKeep,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare:     wgpu.CompareFunctionAlways,
				FailOp:      wgpu.StencilOperationKeep,
				DepthFailOp: wgpu.StencilOperationKeep,
				PassOp:      wgpu.StencilOperationKeep,
			},
		}
	}

	return dev.CreateRenderPipeline(desc)
}

func createProgram(view *View, cache *PipelineCache[programConfig], desc ProgramDescriptor) (*Program, error) {
	if err := ValidateShader(desc.Label, desc.Source, desc.VertexEntry, desc.FragmentEntry); err != nil {
		return nil, err
	}

	if len(desc.Layout.Elements()) == 0 {
		return nil, fmt.Errorf("program %q has an empty input layout", desc.Label)
	}

	topology := desc.Topology
	if topology == wgpu.PrimitiveTopologyUndefined {
		topology = wgpu.PrimitiveTopologyTriangleList
	}

	module, err := compileShaderModule(view.Context, desc.Label, desc.Source)
	if err != nil {
		return nil, err
	}

	config := programConfig{
		module:        module,
		label:         desc.Label,
		vertexEntry:   desc.VertexEntry,
		fragmentEntry: desc.FragmentEntry,
		layout:        desc.Layout,
		topology:      topology,
		format:        view.Format(),
		sampleCount:   view.SampleCount(),
		depth:         view.Depth(),
	}

	cached, err := cache.Get(config)
	if err != nil {
		module.Release()
		return nil, fmt.Errorf("create program %q: %w", desc.Label, err)
	}

	p := &Program{
		cache:  cache,
		config: config,
		cached: cached,
	}

	return p, nil
}

func (p *Program) Release() {
	if p.config.module == nil {
		return
	}

	// releases the pipeline and its bind group layouts
	p.cache.Remove(p.config)

	p.config.module.Release()
	p.config.module = nil
}

type BindingEntry struct {
	Binding uint32
	Buffer  Releaser
}

type BindingsDescriptor struct {
	Label   string
	Program Releaser
	Entries []BindingEntry
}

// Bindings binds uniform buffers to bind group 0 of a Program.
type Bindings struct {
	group *wgpu.BindGroup
}

func createBindings(ctx *Context, desc BindingsDescriptor) (*Bindings, error) {
	program, ok := desc.Program.(*Program)
	if !ok {
		return nil, fmt.Errorf("bindings %q: %w", desc.Label, ErrForeignResource)
	}

	entries := make([]wgpu.BindGroupEntry, 0, len(desc.Entries))
	for _, entry := range desc.Entries {
		buffer, ok := entry.Buffer.(*Buffer)
		if !ok {
			return nil, fmt.Errorf("bindings %q, binding %d: %w", desc.Label, entry.Binding, ErrForeignResource)
		}

		entries = append(entries, wgpu.BindGroupEntry{
			Binding: entry.Binding,
			Buffer:  buffer.buffer,
			Size:    wgpu.WholeSize,
		})
	}

	group, err := ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   desc.Label,
		Layout:  program.cached.GetBindGroupLayout(0),
		Entries: entries,
	})

	if err != nil {
		return nil, fmt.Errorf("create bindings %q: %w", desc.Label, err)
	}

	return &Bindings{group: group}, nil
}

func (b *Bindings) Release() {
	if b.group != nil {
		b.group.Release()
		b.group = nil
	}
}
