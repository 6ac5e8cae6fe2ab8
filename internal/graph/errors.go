package graph

import "github.com/okdaichi/roadmap/internal/rmerr"

var (
	errInvalidArgument = rmerr.ErrInvalidArgument
	errAlreadyExists   = rmerr.ErrAlreadyExists
	errNotFound        = rmerr.ErrNotFound
	errOutOfMemory     = rmerr.ErrOutOfMemory
)

func rmerrConflict(msg string) error {
	return rmerr.New(rmerr.Conflict, msg)
}
