package sim

import "errors"

// Configuration and wiring errors surfaced during setup.
var (
	// ErrMissingParam indicates a required configuration key is absent.
	ErrMissingParam = errors.New("sim: required parameter missing")

	// ErrBadParam indicates a configuration value has the wrong type.
	ErrBadParam = errors.New("sim: parameter has wrong type")

	// ErrUnknownType indicates a component type with no registered factory.
	ErrUnknownType = errors.New("sim: unknown component type")

	// ErrDuplicateType indicates a factory was registered twice.
	ErrDuplicateType = errors.New("sim: component type already registered")

	// ErrDuplicateName indicates two component instances share a name.
	ErrDuplicateName = errors.New("sim: component name already in use")

	// ErrToolNotFound indicates a tool lookup by name failed.
	ErrToolNotFound = errors.New("sim: no tool with that name")

	// ErrDuplicateResource indicates two producers published the same buffer name.
	ErrDuplicateResource = errors.New("sim: resource name already published")

	// ErrResourceMissing indicates a consumer's needed buffer was never published.
	ErrResourceMissing = errors.New("sim: needed resource not published")

	// ErrBadClock indicates an unusable clock specification.
	ErrBadClock = errors.New("sim: invalid clock configuration")
)
