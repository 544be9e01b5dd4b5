package typeregistry

import "errors"

// Lookup and registration errors.
var (
	ErrTypeNotFound      = errors.New("enum type not found")
	ErrConstantNotFound  = errors.New("enum constant not found")
	ErrInvalidType       = errors.New("invalid enum type")
	ErrAlreadyRegistered = errors.New("enum type already registered")
)
