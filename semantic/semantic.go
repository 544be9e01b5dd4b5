// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package semantic binds provider-agnostic concepts to provider groups.
//
// A Catalog is an ordered, immutable table of groups built once at startup.
// Its reverse lookups scan groups in declaration order and return the first
// whose visible qualified names contain the requested name.
//
// Example:
//
//	c := semantic.MustCatalog(reluGroup, sigmoidGroup)
//	typ, ok := c.FindByQualifiedName("org.nd4j.linalg.activations.Activation.RELU")
//	if ok {
//	    ref, err := typ.ProvidedBy(provider.ML4J)
//	}
package semantic

import (
	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/semantic"
)

// Type is a provider-agnostic concept backed by a provider group.
type Type = semantic.Type

// New wraps a group.
func New(group *provider.Group) Type {
	return semantic.New(group)
}

// Of returns the Type produced by factory.
func Of(factory func() Type) Type {
	return semantic.Of(factory)
}

// Catalog is an ordered, immutable table of concept groups.
type Catalog = semantic.Catalog

// NewCatalog builds a catalog from groups in declaration order.
func NewCatalog(groups ...*provider.Group) (*Catalog, error) {
	return semantic.NewCatalog(groups...)
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(groups ...*provider.Group) *Catalog {
	return semantic.MustCatalog(groups...)
}

// ErrDuplicateGroup is returned when two catalog groups share a key.
var ErrDuplicateGroup = semantic.ErrDuplicateGroup
