package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindServerConfig Kind = "server_config"
)

// Error is the error type surfaced to callers of the planning service.
type Error struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Code: entity + ".not_found", Message: entity + " not found"}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func Invalid(field, message string) *Error {
	return &Error{Kind: KindValidation, Code: "validation.invalid", Field: field, Message: message}
}

func Required(field string) *Error {
	return &Error{Kind: KindValidation, Code: "validation.required", Field: field, Message: "is required"}
}

func InvalidDate(field string, raw any, cause error) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "validation.date",
		Field:   field,
		Message: fmt.Sprintf("invalid date %v, expected YYYY-MM-DD", raw),
		Err:     cause,
	}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: "auth.invalid_admin_password", Message: message}
}

func ServerConfig(message string) *Error {
	return &Error{Kind: KindServerConfig, Code: "server.admin_password_unset", Message: message}
}
