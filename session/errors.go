package session

import "errors"

var (
	ErrBlankLine      = errors.New("session: blank line")
	ErrUnknownCommand = errors.New("session: unknown command keyword")
	ErrBadArity       = errors.New("session: wrong number of arguments")
	ErrBadNumber      = errors.New("session: argument is not a non-negative 32-bit integer")
)
