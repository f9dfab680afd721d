// Package apperr carries the recoverable failure kinds the HTTP layer maps to
// status codes. Anything that is not an *Error is treated as an internal
// failure by pkg/resp.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindPermission        Kind = "permission"
	KindOutOfStock        Kind = "out_of_stock"
	KindInsufficientStock Kind = "insufficient_stock"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindConflict          Kind = "conflict"
	KindPrecondition      Kind = "precondition"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(msg string) *Error        { return New(KindValidation, msg) }
func NotFound(msg string) *Error          { return New(KindNotFound, msg) }
func Permission(msg string) *Error        { return New(KindPermission, msg) }
func OutOfStock(msg string) *Error        { return New(KindOutOfStock, msg) }
func InsufficientStock(msg string) *Error { return New(KindInsufficientStock, msg) }
func InsufficientFunds(msg string) *Error { return New(KindInsufficientFunds, msg) }
func Conflict(msg string) *Error          { return New(KindConflict, msg) }
func Precondition(msg string) *Error      { return New(KindPrecondition, msg) }

// KindOf returns the kind of err, or "" for non-domain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
