package servo

import "errors"

// ErrInvalidInput matches every ReadInputError when used with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ReadInputError is returned whenever an input cannot be processed.
type ReadInputError struct {
	Message string
}

func NewReadInputError(message string) *ReadInputError {
	return &ReadInputError{Message: message}
}

func (e *ReadInputError) Error() string {
	return e.Message
}

func (e *ReadInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
