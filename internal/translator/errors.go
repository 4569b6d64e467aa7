package translator

import (
	"errors"
	"fmt"
)

var (
	ErrNotEnabled      = errors.New("extension is not enabled")
	ErrAdapterNotFound = errors.New("translation adapter not found")
)

// AdapterNotFoundError names the configured engine key that has no adapter.
type AdapterNotFoundError struct {
	Engine string
}

func (e *AdapterNotFoundError) Error() string {
	return fmt.Sprintf("translation adapter '%s' not found", e.Engine)
}

func (e *AdapterNotFoundError) Is(target error) bool {
	return target == ErrAdapterNotFound
}

// ConfigError reports a required option that is missing or unusable. It is
// raised before any network call.
type ConfigError struct {
	Option  string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Error is the uniform failure returned by adapters. Message is safe to show
// to users; Err keeps the cause for logs.
type Error struct {
	Engine  string
	Message string
	Err     error
}

// Failed wraps err as a translation failure of engine. label is the display
// name used in the message, for example "DeepL".
func Failed(engine, label string, err error) *Error {
	return &Error{
		Engine:  engine,
		Message: fmt.Sprintf("%s translation failed: %v", label, err),
		Err:     err,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
