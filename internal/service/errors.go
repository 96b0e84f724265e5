package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery is returned before any ledger read when the query
	// window cannot be resolved.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrPersistenceUnavailable wraps every failed ledger read.
	ErrPersistenceUnavailable = errors.New("ledger unavailable")
)

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
}

func invalidQuery(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
