package riichi

import "golang.org/x/xerrors"

// Error classes. ErrIllegalAction is recoverable: the seat asked for
// something outside its current legal set and nothing was mutated.
// ErrInvariant signals a programming defect, ErrBadInput a structurally
// invalid tile/combination at construction.
var (
	ErrIllegalAction = xerrors.New("riichi: illegal action")
	ErrInvariant     = xerrors.New("riichi: invariant violation")
	ErrBadInput      = xerrors.New("riichi: invalid input")
)
