// Package failure provides the error kinds reported by file-split and the
// process exit codes they map to.
package failure

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure.
type Kind string

const (
	// Argument covers missing or malformed command-line values.
	Argument Kind = "argument"
	// Path covers input paths lacking a parent, a stem or an extension.
	Path Kind = "path"
	// IO covers reading the input and creating or writing output.
	IO Kind = "io"
	// Validation covers well-formed values outside their allowed range.
	Validation Kind = "validation"
)

// Exit codes used by the command.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 65
)

// Error is a classified failure carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Argumentf returns an Argument error.
func Argumentf(format string, args ...any) error {
	return &Error{Kind: Argument, Message: fmt.Sprintf(format, args...)}
}

// Pathf returns a Path error.
func Pathf(format string, args ...any) error {
	return &Error{Kind: Path, Message: fmt.Sprintf(format, args...)}
}

// Validationf returns a Validation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// WrapIO classifies err as an IO failure. A nil err returns nil.
func WrapIO(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: IO, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of the first *Error in err's chain, or "" when
// err is unclassified.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case Argument, Validation:
		return ExitUsage
	default:
		return ExitRuntime
	}
}
