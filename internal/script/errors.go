package script

import "errors"

// Replay script errors
var (
	// Parse errors
	ErrParse = errors.New("invalid replay script")

	// Validation errors
	ErrUnknownOp    = errors.New("unknown step op")
	ErrMissingField = errors.New("missing required field")
	ErrNoSteps      = errors.New("script has no steps")
	ErrUnknownKind  = errors.New("unknown element kind")

	// Reference errors
	ErrUnknownAlias   = errors.New("alias not bound")
	ErrDuplicateAlias = errors.New("alias already bound")
)
