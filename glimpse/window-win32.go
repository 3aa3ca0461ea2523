//go:build windows

package glimpse

import (
	"log/slog"
	"syscall"
	"unsafe"

	"github.com/gonutz/w32"
	"github.com/oliverbestmann/webgpu/wgpu"
)

const windowClassName = "go3dwindow"

type win32Window struct {
	hwnd     w32.HWND
	instance w32.HINSTANCE
	handler  Handler

	width, height int
}

func newNativeWindow(opts WindowOptions) (Window, error) {
	return newWin32Window(opts)
}

func newWin32Window(opts WindowOptions) (Window, error) {
	w := &win32Window{
		instance: w32.GetModuleHandle(""),
		width:    opts.Width,
		height:   opts.Height,
	}

	className := syscall.StringToUTF16Ptr(windowClassName)

	class := w32.WNDCLASSEX{
		Style:      w32.CS_HREDRAW | w32.CS_VREDRAW,
		WndProc:    syscall.NewCallback(w.windowProc),
		Instance:   w.instance,
		Icon:       w32.LoadIcon(0, w32.MakeIntResource(w32.IDI_APPLICATION)),
		Cursor:     w32.LoadCursor(0, w32.MakeIntResource(w32.IDC_ARROW)),
		Background: w32.HBRUSH(w32.COLOR_WINDOW + 1),
		ClassName:  className,
		IconSm:     w32.LoadIcon(0, w32.MakeIntResource(w32.IDI_APPLICATION)),
	}

	class.Size = uint32(unsafe.Sizeof(class))

	if w32.RegisterClassEx(&class) == 0 {
		return nil, ErrRegisterClass
	}

	w.hwnd = w32.CreateWindowEx(
		0,
		className,
		syscall.StringToUTF16Ptr(opts.Title),
		w32.WS_OVERLAPPEDWINDOW,
		w32.CW_USEDEFAULT, w32.CW_USEDEFAULT,
		opts.Width, opts.Height,
		0, 0, w.instance, nil,
	)

	if w.hwnd == 0 {
		return nil, ErrCreateWindow
	}

	show := opts.Show
	if show == 0 {
		show = w32.SW_SHOWDEFAULT
	}

	w32.ShowWindow(w.hwnd, show)
	w32.UpdateWindow(w.hwnd)

	slog.Info("Window created",
		slog.String("driver", "win32"),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
	)

	return w, nil
}

func (w *win32Window) windowProc(hwnd w32.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == w32.WM_DESTROY && hwnd == w.hwnd {
		// also reached through DefWindowProc on WM_CLOSE
		w.hwnd = 0
	}

	if w.handler != nil && w.handler(translateMessage(msg, wParam)) {
		return 0
	}

	return w32.DefWindowProc(hwnd, msg, wParam, lParam)
}

func (w *win32Window) Peek() (Message, bool) {
	var msg w32.MSG
	if !w32.PeekMessage(&msg, 0, 0, 0, w32.PM_REMOVE) {
		return Message{}, false
	}

	if msg.Message == w32.WM_QUIT {
		return Message{Kind: MessageQuit, Code: int(msg.WParam)}, true
	}

	translated := translateMessage(msg.Message, msg.WParam)
	translated.raw = msg

	return translated, true
}

func (w *win32Window) Dispatch(msg Message) {
	raw, ok := msg.raw.(w32.MSG)
	if !ok {
		// synthetic message, there is no native message to dispatch
		if w.handler != nil {
			w.handler(msg)
		}

		return
	}

	w32.TranslateMessage(&raw)
	w32.DispatchMessage(&raw)
}

func (w *win32Window) PostQuit(code int) {
	w32.PostQuitMessage(code)
}

func (w *win32Window) Destroy() {
	if w.hwnd == 0 {
		return
	}

	// WM_DESTROY is sent to windowProc before DestroyWindow returns
	hwnd := w.hwnd
	w.hwnd = 0
	w32.DestroyWindow(hwnd)
}

func (w *win32Window) SetHandler(handler Handler) {
	w.handler = handler
}

func (w *win32Window) GetSize() (uint32, uint32) {
	if w.hwnd == 0 {
		return 0, 0
	}

	return uint32(w.width), uint32(w.height)
}

func (w *win32Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{
		WindowsHWND: &wgpu.SurfaceSourceWindowsHWND{
			Hinstance: unsafe.Pointer(w.instance),
			Hwnd:      unsafe.Pointer(w.hwnd),
		},
	}
}

func (w *win32Window) Terminate() {
	w.Destroy()
}

func translateMessage(msg uint32, wParam uintptr) Message {
	switch msg {
	case w32.WM_KEYDOWN:
		return Message{Kind: MessageKeyDown, Key: keyOfVirtual(wParam)}
	case w32.WM_KEYUP:
		return Message{Kind: MessageKeyUp, Key: keyOfVirtual(wParam)}
	case w32.WM_CLOSE:
		return Message{Kind: MessageClose}
	case w32.WM_DESTROY:
		return Message{Kind: MessageDestroy}
	default:
		return Message{Kind: MessageOther}
	}
}

func keyOfVirtual(vk uintptr) Key {
	switch vk {
	case w32.VK_ESCAPE:
		return KeyEscape
	case w32.VK_RETURN:
		return KeyEnter
	case w32.VK_SPACE:
		return KeySpace
	case w32.VK_LEFT:
		return KeyLeft
	case w32.VK_RIGHT:
		return KeyRight
	case w32.VK_UP:
		return KeyUp
	case w32.VK_DOWN:
		return KeyDown
	default:
		return KeyUnknown
	}
}
