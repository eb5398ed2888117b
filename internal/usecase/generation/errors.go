package generation

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedModel   = errors.New("unsupported model")
	ErrServiceUnavailable = errors.New("generation service unavailable")
	ErrEmptyGeneration    = errors.New("generation returned empty content")
)

// GenerationError wraps a failure of the text-generation backend.
type GenerationError struct {
	Model   string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("proposal generation failed (model %s): %s", e.Model, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newGenerationError(model string, err error) *GenerationError {
	return &GenerationError{Model: model, Message: err.Error(), Err: err}
}
