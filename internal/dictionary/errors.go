package dictionary

import (
	"errors"
	"fmt"
)

// ErrDecode is returned when a dictionary line is not valid UTF-8
var ErrDecode = errors.New("invalid UTF-8 in dictionary file")

// IOError reports a failed load or save of a dictionary file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s dictionary %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
