package command

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingPrefix: the text does not start with the expected command.
	ErrMissingPrefix = errors.New("missing command prefix")
	// ErrMissingParameters: fewer comma-separated parts than the command needs.
	ErrMissingParameters = errors.New("missing parameters")
	// ErrBadDate: the value does not match ДД.ММ.ГГ.
	ErrBadDate = errors.New("bad date format")
	// ErrBadTime: the value does not match ЧЧ:ММ.
	ErrBadTime = errors.New("bad time format")
)

// UnsupportedFieldError reports an update-field label outside the fixed set.
type UnsupportedFieldError struct {
	Label string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("unsupported field %q", e.Label)
}
