package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

type glfwWindow struct {
	win     *glfw.Window
	handler Handler

	// messages collected by the glfw callbacks
	queue []Message
}

func newGLFWWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: initialize glfw: %w", ErrRegisterClass, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}

	w := &glfwWindow{win: window}

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press, glfw.Repeat:
			w.post(Message{Kind: MessageKeyDown, Key: keyOf(glfwKey)})

		case glfw.Release:
			w.post(Message{Kind: MessageKeyUp, Key: keyOf(glfwKey)})
		}
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		// closing goes through the handler like any other message,
		// the default behaviour destroys the window
		_win.SetShouldClose(false)
		w.post(Message{Kind: MessageClose})
	})

	slog.Info("Window created",
		slog.String("driver", "glfw"),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
	)

	return w, nil
}

func (g *glfwWindow) post(msg Message) {
	g.queue = append(g.queue, msg)
}

func (g *glfwWindow) Peek() (Message, bool) {
	if len(g.queue) == 0 && g.win != nil {
		glfw.PollEvents()
	}

	if len(g.queue) == 0 {
		return Message{}, false
	}

	msg := g.queue[0]
	g.queue = g.queue[1:]

	return msg, true
}

func (g *glfwWindow) Dispatch(msg Message) {
	if g.handler != nil && g.handler(msg) {
		return
	}

	if msg.Kind == MessageClose {
		g.Destroy()
	}
}

func (g *glfwWindow) PostQuit(code int) {
	g.post(Message{Kind: MessageQuit, Code: code})
}

func (g *glfwWindow) Destroy() {
	if g.win == nil {
		return
	}

	g.win.Destroy()
	g.win = nil

	if g.handler != nil {
		g.handler(Message{Kind: MessageDestroy})
	}
}

func (g *glfwWindow) SetHandler(handler Handler) {
	g.handler = handler
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	if g.win == nil {
		return 0, 0
	}

	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	if g.win != nil {
		g.win.Destroy()
		g.win = nil
	}

	glfw.Terminate()
}

func keyOf(glfwKey glfw.Key) Key {
	switch glfwKey {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyEnter:
		return KeyEnter
	case glfw.KeySpace:
		return KeySpace
	case glfw.KeyLeft:
		return KeyLeft
	case glfw.KeyRight:
		return KeyRight
	case glfw.KeyUp:
		return KeyUp
	case glfw.KeyDown:
		return KeyDown
	default:
		return KeyUnknown
	}
}
