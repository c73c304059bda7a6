package usecases

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for the fansign module.
var (
	// ErrTextTooLong is returned when the fansign text exceeds the length limit.
	ErrTextTooLong = errors.New("text is too long")

	// ErrUnknownFont is returned when the requested font does not exist.
	ErrUnknownFont = errors.New("invalid font")

	// ErrUnknownStyle is returned when a requested style does not exist.
	ErrUnknownStyle = errors.New("invalid style")

	// ErrDuplicateStyle is returned when bulk generation selects a style twice.
	ErrDuplicateStyle = errors.New("style selected more than once")

	// ErrNoStyles is returned when bulk generation selects no style.
	ErrNoStyles = errors.New("no style selected")

	// ErrTooManyStyles is returned when bulk generation selects too many styles.
	ErrTooManyStyles = errors.New("too many styles selected")

	// ErrNotEntitled is returned when the user has not redeemed a premium key.
	ErrNotEntitled = errors.New("no premium access")

	// ErrWrongChannel is returned when a premium command is used outside the premium category.
	ErrWrongChannel = errors.New("premium commands are not allowed in this channel")
)

// ChoiceError reports an invalid choice together with the valid ones.
type ChoiceError struct {
	Err       error
	Value     string
	Available []string
}

// Error implements error.
func (e *ChoiceError) Error() string {
	return fmt.Sprintf("%v: %q (available: %s)", e.Err, e.Value, strings.Join(e.Available, ", "))
}

// Unwrap returns the underlying sentinel error.
func (e *ChoiceError) Unwrap() error {
	return e.Err
}
