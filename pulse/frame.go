package pulse

import (
	"github.com/oliverbestmann/webgpu/wgpu"
)

type Releaser interface {
	Release()
}

type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}

type ClearValues struct {
	Color Color

	// only used if the View has a depth buffer
	Depth float32
}

// frame holds the state between Renderer.Clear and Renderer.Present.
type frame struct {
	surface     *wgpu.Texture
	surfaceView *wgpu.TextureView
	encoder     *wgpu.CommandEncoder
	pass        *wgpu.RenderPassEncoder
}

// release releases whatever the frame still holds. The surface texture
// is only released here if it was never presented.
func (f *frame) release() {
	if f.pass != nil {
		f.pass.Release()
		f.pass = nil
	}

	if f.encoder != nil {
		f.encoder.Release()
		f.encoder = nil
	}

	if f.surfaceView != nil {
		f.surfaceView.Release()
		f.surfaceView = nil
	}

	if f.surface != nil {
		f.surface.Release()
		f.surface = nil
	}
}

func (vs *View) beginFrame(values ClearValues) (fr *frame, err error) {
	fr = &frame{}

	defer func() {
		if err != nil {
			fr.release()
			fr = nil
		}
	}()

	// get the surface texture (the actual screen)
	fr.surface, err = vs.Surface.GetCurrentTexture()
	if err != nil {
		return fr, err
	}

	fr.surfaceView, err = fr.surface.CreateView(nil)
	if err != nil {
		return fr, err
	}

	fr.encoder, err = vs.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Frame",
	})

	if err != nil {
		return fr, err
	}

	view, resolveTarget := vs.ColorTarget(fr.surfaceView)

	desc := &wgpu.RenderPassDescriptor{
		Label: "Frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:          view,
				ResolveTarget: resolveTarget,
				LoadOp:        wgpu.LoadOpClear,
				StoreOp:       wgpu.StoreOpStore,
				ClearValue:    values.Color.ToWGPU(),
			},
		},
	}

	if depthView := vs.DepthTarget(); depthView != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: values.Depth,
		}
	}

	fr.pass = fr.encoder.BeginRenderPass(desc)

	x, y, w, h := vs.Viewport().XYWH()
	fr.pass.SetViewport(x, y, w, h, 0, 1)

	return fr, nil
}

func (vs *View) presentFrame(fr *frame) error {
	defer fr.release()

	pass := fr.pass
	fr.pass = nil

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return err
	}

	passGuard.Release()

	// encode into a command buffer
	buf, err := fr.encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "Frame"})
	if err != nil {
		return err
	}

	defer buf.Release()

	vs.Queue.Submit(buf)

	// present the rendered image
	vs.Surface.Present()

	// we do not need to release the screen if present was successful
	fr.surface = nil

	return nil
}
