package lines

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure reported by the engine.
type ErrorKind int

const (
	// KindNone is returned by KindOf for nil or foreign errors.
	KindNone ErrorKind = iota
	// KindOutOfRange: coordinate outside the board.
	KindOutOfRange
	// KindInvalidSelection: selection of an empty cell.
	KindInvalidSelection
	// KindPreconditionNotMet: command issued in the wrong state or towards a
	// cell that cannot take the ball. Nothing was mutated.
	KindPreconditionNotMet
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindOutOfRange:
		return "OutOfRange"
	case KindInvalidSelection:
		return "InvalidSelection"
	case KindPreconditionNotMet:
		return "PreconditionNotMet"
	default:
		return "None"
	}
}

var (
	// ErrOutOfRange matches every KindOutOfRange error.
	ErrOutOfRange = errors.New("cell is out of range")
	// ErrInvalidSelection matches every KindInvalidSelection error.
	ErrInvalidSelection = errors.New("no ball at the selected cell")
	// ErrPreconditionNotMet matches every KindPreconditionNotMet error.
	ErrPreconditionNotMet = errors.New("precondition not met")
	// ErrInvalidSize is returned by NewBoard for non-positive dimensions.
	ErrInvalidSize = errors.New("board dimensions must be positive")
)

// Error is the single error type returned by Board accessors and Controller
// commands.
type Error struct {
	Kind   ErrorKind
	Op     string // operation name, e.g. "select", "start move"
	Cell   Cell   // offending cell, if any
	HasPos bool
	Reason string
}

func (e *Error) Error() string {
	msg := "lines: " + e.Op
	if e.HasPos {
		msg += " " + e.Cell.String()
	}
	msg += ": " + e.sentinel().Error()
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap exposes the sentinel of the error kind so errors.Is works.
func (e *Error) Unwrap() error {
	return e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindOutOfRange:
		return ErrOutOfRange
	case KindInvalidSelection:
		return ErrInvalidSelection
	default:
		return ErrPreconditionNotMet
	}
}

func outOfRange(op string, c Cell) error {
	return &Error{Kind: KindOutOfRange, Op: op, Cell: c, HasPos: true}
}

func preconditionf(op string, format string, args ...any) error {
	return &Error{Kind: KindPreconditionNotMet, Op: op, Reason: fmt.Sprintf(format, args...)}
}

func preconditionAt(op string, c Cell, reason string) error {
	return &Error{Kind: KindPreconditionNotMet, Op: op, Cell: c, HasPos: true, Reason: reason}
}

// KindOf extracts the ErrorKind of err, or KindNone.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// IsSoft reports whether err is an expected, ignorable rejection.
// Soft failures never mutate the board or the controller.
func IsSoft(err error) bool {
	return KindOf(err) == KindPreconditionNotMet
}
