// Package apperror holds the error taxonomy shared by every layer.
// Adapters wrap driver errors with one of these sentinels so the presentation
// layer can map them to status codes with errors.Is.
package apperror

import "errors"

var (
	// ErrConnection is fatal at startup: the process must not serve traffic.
	ErrConnection = errors.New("connection error")

	// ErrNotConnected is returned when the database handle is used before Connect or after Stop.
	ErrNotConnected = errors.New("database is not connected")

	ErrStorage      = errors.New("storage error")
	ErrImage        = errors.New("image error")
	ErrRepository   = errors.New("repository error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)
