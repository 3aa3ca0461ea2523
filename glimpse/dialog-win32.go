//go:build windows

package glimpse

import "github.com/gonutz/w32"

func (systemDialog) Confirm(title, text string) bool {
	return w32.MessageBox(0, text, title, w32.MB_YESNO|w32.MB_ICONQUESTION) == w32.IDYES
}

func (systemDialog) Error(title, text string) {
	w32.MessageBox(0, text, title, w32.MB_OK|w32.MB_ICONERROR)
}
