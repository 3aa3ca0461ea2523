package glimpse

import (
	"fmt"
	"log/slog"
)

// Frame is invoked by the Host whenever the message queue is empty.
type Frame interface {
	Update() error
	Render() error
}

// Host owns a Window and acts as its window procedure. It runs the
// message loop and drives a Frame while no message is pending.
type Host struct {
	window Window
	dialog Dialog

	// optional hook that runs after every rendered frame.
	// nil means rendering is uncapped.
	pace func()
}

func NewHost(window Window, dialog Dialog) *Host {
	h := &Host{window: window, dialog: dialog}
	window.SetHandler(h.handle)
	return h
}

// SetFramePacing installs a hook that runs after every idle tick, e.g. to
// sleep until the next frame is due. Passing nil restores uncapped rendering.
func (h *Host) SetFramePacing(pace func()) {
	h.pace = pace
}

func (h *Host) handle(msg Message) bool {
	switch msg.Kind {
	case MessageKeyDown:
		if msg.Key == KeyEscape && h.dialog.Confirm("Really?", "Are you sure you want to exit?") {
			slog.Info("Exit confirmed")
			h.window.Destroy()
		}

		return true

	case MessageDestroy:
		h.window.PostQuit(0)
		return true
	}

	return false
}

// Run pumps the message queue until a quit message arrives and returns its
// exit code. While the queue is empty, frame is updated and rendered once per
// pass without waiting. frame may be nil, in which case Run only pumps messages.
func (h *Host) Run(frame Frame) (int, error) {
	for {
		msg, ok := h.window.Peek()
		if ok {
			if msg.Kind == MessageQuit {
				slog.Info("Quit", slog.Int("code", msg.Code))
				return msg.Code, nil
			}

			h.window.Dispatch(msg)
			continue
		}

		if frame != nil {
			if err := frame.Update(); err != nil {
				return 0, fmt.Errorf("update frame: %w", err)
			}

			if err := frame.Render(); err != nil {
				return 0, fmt.Errorf("render frame: %w", err)
			}
		}

		if h.pace != nil {
			h.pace()
		}
	}
}
