package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/oliverbestmann/go3d/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// DepthFormat is the format of the depth buffer of a View.
const DepthFormat = wgpu.TextureFormatDepth32Float

// View is the swapchain: the configured surface plus the render
// targets that have the same size as the surface.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	// only configured if we have a multisample texture configured
	msaaTexture *Texture

	// depth texture to render to.
	// has the same sampleCount as the surface itself
	depthTexture *Texture

	sampleCount uint32

	// true if depth is enabled
	depth bool
}

type ViewOptions struct {
	// SampleCount is either 1 or 4.
	SampleCount uint32

	Depth bool

	// Immediate presents without waiting for the vertical blank if the
	// surface supports it. Falls back to fifo otherwise.
	Immediate bool
}

func NewView(dev *Context, opts ViewOptions) (*View, error) {
	switch opts.SampleCount {
	case 0:
		opts.SampleCount = 1
	case 1, 4:
	default:
		return nil, fmt.Errorf("unsupported sample count %d", opts.SampleCount)
	}

	st := &View{
		Context:     dev,
		depth:       opts.Depth,
		sampleCount: opts.SampleCount,
	}

	// Print the available render formats
	caps := dev.Surface.GetCapabilities(dev.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("surface has no alpha modes")
	}

	presentMode := wgpu.PresentModeFifo
	if opts.Immediate && slices.Contains(caps.PresentModes, wgpu.PresentModeImmediate) {
		presentMode = wgpu.PresentModeImmediate
	}

	slog.Info("Surface present mode", slog.Any("mode", presentMode))

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormatBGRA8Unorm,
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}

	return st, nil
}

func (vs *View) MSAA() bool {
	return vs.sampleCount > 1
}

func (vs *View) Depth() bool {
	return vs.depth
}

func (vs *View) SampleCount() uint32 {
	return vs.sampleCount
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

// Viewport covers the full surface.
func (vs *View) Viewport() Rectangle2f {
	return RectangleFromPoints(
		glm.Vec2f{0, 0},
		glm.Vec2f{float32(vs.surfaceConfig.Width), float32(vs.surfaceConfig.Height)},
	)
}

// ColorTarget returns the view to render to and the view to resolve into
// for the given surface view.
func (vs *View) ColorTarget(surfaceView *wgpu.TextureView) (view, resolveTarget *wgpu.TextureView) {
	if vs.MSAA() {
		return vs.msaaTexture.View(), surfaceView
	}

	return surfaceView, nil
}

func (vs *View) DepthTarget() *wgpu.TextureView {
	if vs.depthTexture == nil {
		return nil
	}

	return vs.depthTexture.View()
}

// Release releases the textures owned by the view. The Context stays alive.
func (vs *View) Release() {
	if vs.depthTexture != nil {
		vs.depthTexture.Release()
		vs.depthTexture = nil
	}

	if vs.msaaTexture != nil {
		vs.msaaTexture.Release()
		vs.msaaTexture = nil
	}
}

func (vs *View) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)

	// release the previous targets
	vs.Release()

	// create depth texture
	if vs.depth {
		texture, err := createDepthTexture(vs.Context, width, height, vs.sampleCount)
		if err != nil {
			return fmt.Errorf("create depth texture: %w", err)
		}

		vs.depthTexture = texture
	}

	if vs.MSAA() {
		// create msaa render target texture
		texture, err := createMultisampleTexture(vs.Context, vs.surfaceConfig, vs.sampleCount)
		if err != nil {
			vs.Release()
			return fmt.Errorf("create multisample texture: %w", err)
		}

		vs.msaaTexture = texture
	}

	return nil
}

func createMultisampleTexture(ctx *Context, surfaceConfig *wgpu.SurfaceConfiguration, sampleCount uint32) (*Texture, error) {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label: "MultisampleRenderTarget",
		Usage: wgpu.TextureUsageRenderAttachment,
		Size: wgpu.Extent3D{
			Width:              surfaceConfig.Width,
			Height:             surfaceConfig.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        surfaceConfig.Format,
		Dimension:     wgpu.TextureDimension2D,
		SampleCount:   sampleCount,
		MipLevelCount: 1,
	})
}

func createDepthTexture(ctx *Context, width, height, sampleCount uint32) (*Texture, error) {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label:     "DepthTexture",
		Usage:     wgpu.TextureUsageRenderAttachment,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        DepthFormat,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
	})
}
