// Package game
package game

import (
	"errors"
	"fmt"
)

type ErrorKind byte

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindInvalidState
	KindInsufficientResource
	KindStore
)

var errorKindsString = []string{"ValidationError", "NotFoundError", "InvalidStateError",
	"InsufficientResourceError", "StoreError"}

func (e ErrorKind) String() string {
	return errorKindsString[e]
}

// Error 游戏引擎返回的结构化错误
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func ValidationError(format string, args ...any) *Error {
	return NewError(KindValidation, fmt.Sprintf(format, args...), nil)
}

func NotFoundError(message string, err error) *Error {
	return NewError(KindNotFound, message, err)
}

func InvalidStateError(format string, args ...any) *Error {
	return NewError(KindInvalidState, fmt.Sprintf(format, args...), nil)
}

func InsufficientResourceError(format string, args ...any) *Error {
	return NewError(KindInsufficientResource, fmt.Sprintf(format, args...), nil)
}

func StoreError(err error) *Error {
	return NewError(KindStore, "game store failure", err)
}

// KindOf 返回错误类型, 非 *Error 的错误都视为存储错误
func KindOf(err error) ErrorKind {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Kind
	}
	return KindStore
}
