// Package rmerr defines the discriminated error kinds shared by every
// layer of the road map core, following the teacher's habit of a small
// set of sentinel errors per package (the teacher's dijkstra.go pairs
// errNodeNotFound/errNoPath the same way) wrapped with %w for operation
// context.
package rmerr

import "errors"

// Kind discriminates the handful of ways a core operation can fail.
type Kind int

const (
	InvalidArgument Kind = iota
	NotFound
	AlreadyExists
	Conflict
	Ambiguous
	OutOfMemory
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case NotFound:
		return "not found"
	case AlreadyExists:
		return "already exists"
	case Conflict:
		return "conflict"
	case Ambiguous:
		return "ambiguous"
	case OutOfMemory:
		return "out of memory"
	default:
		return "unknown"
	}
}

// kindError is a sentinel error tagged with its Kind.
type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// New creates a sentinel error of the given kind and message. Callers
// wrap it with fmt.Errorf("op: %w", err) to add context while keeping
// it discoverable via Is.
func New(kind Kind, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Is reports whether err (or anything it wraps) carries the given Kind.
func Is(err error, kind Kind) bool {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind == kind
	}
	return false
}

// Sentinels for the common cases; packages that need a distinct message
// call New directly instead.
var (
	ErrInvalidArgument = New(InvalidArgument, "invalid argument")
	ErrNotFound        = New(NotFound, "not found")
	ErrAlreadyExists   = New(AlreadyExists, "already exists")
	ErrConflict        = New(Conflict, "conflict")
	ErrAmbiguous       = New(Ambiguous, "ambiguous")
	ErrOutOfMemory     = New(OutOfMemory, "out of memory")
)
