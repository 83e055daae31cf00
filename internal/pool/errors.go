package pool

import "errors"

// Contract-violation taxonomy. Everything except ErrUnknownID indicates a
// configuration or programmer error and is raised as a panic wrapping the
// sentinel — the subsystem fails fast instead of limping on with a corrupt
// registry. ErrUnknownID is returned normally: name-based acquisition is fed
// by runtime data, so a missing pool id is input validation, not a wiring bug.
var (
	ErrDuplicateTemplate    = errors.New("pool: template already registered")
	ErrDuplicateID          = errors.New("pool: pool id already registered")
	ErrUnknownID            = errors.New("pool: unknown pool id")
	ErrMissingCapability    = errors.New("pool: template is not networked")
	ErrUnregisteredTemplate = errors.New("pool: template was never registered")
)
