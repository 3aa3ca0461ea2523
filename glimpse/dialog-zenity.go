//go:build !windows

package glimpse

import (
	"errors"
	"log/slog"

	"github.com/ncruces/zenity"
)

func (systemDialog) Confirm(title, text string) bool {
	err := zenity.Question(text,
		zenity.Title(title),
		zenity.QuestionIcon,
		zenity.OKLabel("Yes"),
		zenity.CancelLabel("No"),
	)

	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		slog.Warn("Show confirmation dialog", slog.String("err", err.Error()))
	}

	return err == nil
}

func (systemDialog) Error(title, text string) {
	err := zenity.Error(text,
		zenity.Title(title),
		zenity.ErrorIcon,
	)

	if err != nil {
		slog.Warn("Show error dialog", slog.String("err", err.Error()))
	}
}
