package provider

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnresolved        = errors.New("provider reference cannot be resolved")
	ErrNoSuchProvider    = errors.New("no visible reference for provider")
	ErrTypeMismatch      = errors.New("resolved constant has unexpected type")
	ErrDuplicateProvider = errors.New("more than one visible reference for provider")
)

// UnresolvedError reports a reference whose type or constant could not be
// located in the type registry.
type UnresolvedError struct {
	Provider     Provider
	TypeName     string
	ConstantName string
	Err          error // ErrTypeNotFound, ErrConstantNotFound or ErrTypeMismatch
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("provider enum %s:%s.%s cannot be resolved: %v", e.Provider, e.TypeName, e.ConstantName, e.Err)
}

// Unwrap returns the underlying lookup error.
func (e *UnresolvedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrUnresolved.
func (e *UnresolvedError) Is(target error) bool {
	return target == ErrUnresolved
}

// NoSuchProviderError reports a group without a visible member for a provider.
type NoSuchProviderError struct {
	Group    string
	Provider Provider
}

// Error implements the error interface.
func (e *NoSuchProviderError) Error() string {
	return fmt.Sprintf("%s does not include an enum from provider: %s", e.Group, e.Provider)
}

// Is reports whether target is ErrNoSuchProvider.
func (e *NoSuchProviderError) Is(target error) bool {
	return target == ErrNoSuchProvider
}
