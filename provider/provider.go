// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package provider

import (
	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/typeregistry"
)

// Provider names a library that supplies enum constants.
type Provider = provider.Provider

// Known providers.
const (
	ML4J = provider.ML4J
	DL4J = provider.DL4J
)

// PendingTypeName is the type name of placeholders whose type is not known yet.
const PendingTypeName = provider.PendingTypeName

// Reference is a textual pointer to a constant of a provider enum type.
type Reference = provider.Reference

// NewReference creates a visible reference to typeName.constantName.
func NewReference(p Provider, typeName, constantName string) Reference {
	return provider.NewReference(p, typeName, constantName)
}

// ReferenceTo creates a visible reference to a live constant.
func ReferenceTo(p Provider, value typeregistry.Enum) Reference {
	return provider.ReferenceTo(p, value)
}

// ReferenceIn creates a visible reference to a live constant, named after the
// type name reg knows it by.
func ReferenceIn(p Provider, reg typeregistry.Registry, value typeregistry.Enum) Reference {
	return provider.ReferenceIn(p, reg, value)
}

// Placeholders

// PlaceholderOption configures a placeholder reference.
type PlaceholderOption = provider.PlaceholderOption

// NewPlaceholder reserves a slot for a provider that has no implementation of
// a concept yet.
//
// Example:
//
//	p := provider.NewPlaceholder(provider.ML4J, "LEAKYRELU")
//	p.Visible() // false
func NewPlaceholder(p Provider, constantName string, opts ...PlaceholderOption) Reference {
	return provider.NewPlaceholder(p, constantName, opts...)
}

// WithTypeName sets the placeholder's type name.
func WithTypeName(typeName string) PlaceholderOption {
	return provider.WithTypeName(typeName)
}

// WithVisible overrides the placeholder's visibility.
func WithVisible(visible bool) PlaceholderOption {
	return provider.WithVisible(visible)
}

// ResolveAs resolves r in reg and asserts the constant's type.
//
// Example:
//
//	relu, err := provider.ResolveAs[ml4j.ActivationFunctionBaseType](ref, types)
func ResolveAs[T typeregistry.Enum](r Reference, reg typeregistry.Registry) (T, error) {
	return provider.ResolveAs[T](r, reg)
}

// Groups

// Group holds the per-provider references of one concept.
type Group = provider.Group

// NewGroup builds a group, rejecting two visible references for one provider.
func NewGroup(key, label string, refs ...Reference) (*Group, error) {
	return provider.NewGroup(key, label, refs...)
}

// MustGroup is like NewGroup but panics on error.
func MustGroup(key, label string, refs ...Reference) *Group {
	return provider.MustGroup(key, label, refs...)
}

// Errors

// Common errors.
var (
	ErrUnresolved        = provider.ErrUnresolved
	ErrNoSuchProvider    = provider.ErrNoSuchProvider
	ErrTypeMismatch      = provider.ErrTypeMismatch
	ErrDuplicateProvider = provider.ErrDuplicateProvider
)

// UnresolvedError reports a reference that could not be resolved.
type UnresolvedError = provider.UnresolvedError

// NoSuchProviderError reports a group without a visible member for a provider.
type NoSuchProviderError = provider.NoSuchProviderError
