// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// ErrEmptyUsername is returned when no username can be derived from the profile input.
var ErrEmptyUsername = errors.New("Please enter a valid GitHub URL or username")

// ErrUserNotFound is returned when the profile lookup answers with a non-success status.
type ErrUserNotFound struct {
	Username string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("User '%s' not found on GitHub", e.Username)
}

// ErrFetch wraps a transport-level failure while retrieving GitHub data.
type ErrFetch struct {
	Err error
}

func (e *ErrFetch) Error() string {
	return fmt.Sprintf("Error fetching GitHub data: %v", e.Err)
}

func (e *ErrFetch) Unwrap() error {
	return e.Err
}

// ErrInvalidTemperature is returned when a requested temperature is outside the accepted range.
type ErrInvalidTemperature struct {
	Value float64
	Min   float64
	Max   float64
}

func (e *ErrInvalidTemperature) Error() string {
	return fmt.Sprintf("invalid temperature %.2f, expected a value between %.1f and %.1f", e.Value, e.Min, e.Max)
}
