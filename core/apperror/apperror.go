package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind is the class of an error.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindNotFound   Kind = "NotFound"
	KindStore      Kind = "StoreError"
	KindInternal   Kind = "InternalError"
)

// Error is a classified error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if msg == "" {
		msg = "Unspecified"
	}
	return "[" + string(e.Kind) + "] - " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: KindStore}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

// Validation creates a ValidationError.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a NotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a shadow store failure. A nil err returns nil.
func Store(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) && ae.Kind == KindStore {
		return err
	}
	return &Error{Kind: KindStore, Message: fmt.Sprintf(format, args...), Err: err}
}

// Internal wraps an unexpected failure. A nil err returns nil.
func Internal(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the class of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// Format renders any error with a bracketed class prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err.Error()
	}
	msg := err.Error()
	if msg == "" {
		return "[" + string(KindInternal) + "] - Unspecified"
	}
	if strings.HasPrefix(msg, "[") {
		return msg
	}
	return "[" + string(KindInternal) + "] - " + msg
}

// HTTPStatus maps an error class to a response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
