package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err with a sentinel so that errors.Is(err, markErr) holds while
// the message and stack of err are kept.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Is(target error) bool { return target == e.mark }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Validationf builds a message-only error marked as ErrValidation.
func Validationf(format string, args ...any) error {
	return Mark(cr.Newf(format, args...), ErrValidation)
}

// Configurationf builds a message-only error marked as ErrConfiguration.
func Configurationf(format string, args ...any) error {
	return Mark(cr.Newf(format, args...), ErrConfiguration)
}
