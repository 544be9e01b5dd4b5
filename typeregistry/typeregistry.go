// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package typeregistry provides the runtime lookup of provider enum types.
//
// A Registry turns a qualified type name and a constant name into a live
// enum value. Types is the default implementation; provider packages link
// their enum types into it eagerly with Register / RegisterAs or lazily with
// RegisterLoader.
//
// Example:
//
//	types := typeregistry.NewTypes()
//	if err := types.RegisterLoader("org.nd4j.linalg.activations.Activation", loadND4J); err != nil {
//	    log.Fatal(err)
//	}
//	value, err := types.LookupConstant("org.nd4j.linalg.activations.Activation", "RELU")
package typeregistry

import (
	"log/slog"

	"github.com/ml4j/enums/internal/typeregistry"
)

// Enum is a constant of a provider enum type. String returns the constant name.
type Enum = typeregistry.Enum

// Registry resolves enum constants by qualified type name and constant name.
type Registry = typeregistry.Registry

// Loader produces the constants of a lazily registered type.
type Loader = typeregistry.Loader

// Option configures Types.
type Option = typeregistry.Option

// Types is a Registry backed by a named reflect.Type table.
type Types = typeregistry.Types

// NewTypes creates an empty registry.
func NewTypes(opts ...Option) *Types {
	return typeregistry.NewTypes(opts...)
}

// WithLogger sets the logger used for registration and lazy loading events.
func WithLogger(logger *slog.Logger) Option {
	return typeregistry.WithLogger(logger)
}

// PendingTypeName is reserved for references whose type is not known yet.
const PendingTypeName = typeregistry.PendingTypeName

// TypeName returns the Go qualified name of v's type.
func TypeName(v any) string {
	return typeregistry.TypeName(v)
}

// Lookup and registration errors.
var (
	ErrTypeNotFound      = typeregistry.ErrTypeNotFound
	ErrConstantNotFound  = typeregistry.ErrConstantNotFound
	ErrInvalidType       = typeregistry.ErrInvalidType
	ErrAlreadyRegistered = typeregistry.ErrAlreadyRegistered
)
