package glimpse

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:generate go tool stringer -type=Key,MessageKind -trimprefix=Key -output=key_string.go

var ErrRegisterClass = errors.New("register window class")
var ErrCreateWindow = errors.New("create window")

// Key identifies a keyboard key. Only the keys the tutorials react to
// are mapped, everything else arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageKeyDown
	MessageKeyUp
	MessageClose
	MessageDestroy
	MessageQuit
	MessageOther
)

// Message is a window message taken from the queue of a Window.
type Message struct {
	Kind MessageKind

	// the key of a MessageKeyDown or MessageKeyUp
	Key Key

	// the exit code of a MessageQuit
	Code int

	// platform specific payload, needed for default handling
	raw any
}

// Handler is the window procedure. It returns true if it consumed
// the message, otherwise the platform applies its default behaviour.
type Handler func(msg Message) bool

type Window interface {
	// Peek removes the next pending message from the queue.
	// It never blocks, ok is false if the queue is empty.
	Peek() (msg Message, ok bool)

	// Dispatch hands the message to the Handler and applies the default
	// behaviour if the handler did not consume it.
	Dispatch(msg Message)

	// PostQuit places a MessageQuit with the given exit code into the queue.
	PostQuit(code int)

	// Destroy destroys the native window. The Handler receives a
	// MessageDestroy before Destroy returns.
	Destroy()

	SetHandler(handler Handler)

	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Terminate releases the platform, destroying the window if still alive.
	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// Show is the show command of the native window, the nShowCmd of WinMain.
	// Go programs do not receive one, so zero means SW_SHOWDEFAULT, which
	// makes Windows apply the show state from the process startup info.
	Show int

	// Driver forces a window driver, either "glfw" or "win32".
	// The empty string picks the native driver of the platform.
	Driver string
}

func NewWindow(opts WindowOptions) (Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrCreateWindow, opts.Width, opts.Height)
	}

	switch opts.Driver {
	case "":
		return newNativeWindow(opts)

	case "glfw":
		return newGLFWWindow(opts)

	case "win32":
		return newWin32Window(opts)

	default:
		return nil, fmt.Errorf("%w: unknown window driver %q", ErrCreateWindow, opts.Driver)
	}
}
