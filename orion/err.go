package orion

import (
	"errors"
	"fmt"
)

// ExitFailure is the process exit code after a fatal error.
const ExitFailure = 1

var ErrInvalidState = errors.New("invalid pipeline state")

// FatalError aborts startup or the render loop. Op names the failing operation
// and is shown to the user together with the native error description.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(op string, err error) error {
	if err == nil {
		return nil
	}

	var fe *FatalError
	if errors.As(err, &fe) {
		return err
	}

	return &FatalError{Op: op, Err: err}
}
