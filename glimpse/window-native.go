//go:build !windows

package glimpse

import "fmt"

func newNativeWindow(opts WindowOptions) (Window, error) {
	return newGLFWWindow(opts)
}

func newWin32Window(opts WindowOptions) (Window, error) {
	return nil, fmt.Errorf("%w: win32 driver is only available on windows", ErrCreateWindow)
}
