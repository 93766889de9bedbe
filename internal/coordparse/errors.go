package coordparse

import (
	"errors"
	"fmt"
)

var ErrFormatNotRecognized = errors.New("format of coordinates was not recognized")

// FormatError reports an input that no known coordinate format matched
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrFormatNotRecognized, e.Input)
}

func (e *FormatError) Unwrap() error {
	return ErrFormatNotRecognized
}
