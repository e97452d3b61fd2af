package protocol

import "errors"

// Registration rejection reasons (spec.md §6, §7).
var (
	ErrSideTaken         = errors.New("protocol: requested paddle side is already taken")
	ErrMatchInProgress   = errors.New("protocol: match has already started")
	ErrDuplicateIdentity = errors.New("protocol: player identity already registered")
	ErrSideNotSet        = errors.New("protocol: paddle_type must be LEFT or RIGHT")
)
