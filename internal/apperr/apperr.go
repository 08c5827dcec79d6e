package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so callers can react without inspecting messages.
type Kind string

const (
	KindInvalidInput      Kind = "invalid_input"
	KindUnsupportedFormat Kind = "unsupported_format"
	KindNoText            Kind = "no_text"
	KindGeneration        Kind = "generation"
	KindGenerationTimeout Kind = "generation_timeout"
	KindStorage           Kind = "storage"
	KindConfig            Kind = "config"
	KindInternal          Kind = "internal"
)

// Error is the failure value passed between components.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewFormError reports invalid form fields, keyed by field name.
func NewFormError(message string, fields map[string]string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Fields: fields}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a kind to the status code the endpoints answer with.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput, KindUnsupportedFormat, KindNoText:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
