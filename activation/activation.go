// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation is the catalog of activation function concepts across
// the ML4J and DL4J providers.
//
// # Basic Usage
//
//	ref, err := activation.RELU.Type().ProvidedBy(provider.ML4J)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	types := typeregistry.NewTypes()
//	_ = activation.LinkML4J(types)
//	relu, err := provider.ResolveAs[activation.ML4JType](ref, types)
//	out := relu.Apply([]float64{-1, 0, 1})
//
// # Reverse Lookup
//
//	typ, ok := activation.FindByQualifiedName("org.nd4j.linalg.activations.Activation.IDENTITY")
//	// typ equals activation.LINEAR.Type()
package activation

import (
	"github.com/ml4j/enums/internal/activation"
	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/providers/dl4j"
	"github.com/ml4j/enums/internal/providers/ml4j"
	"github.com/ml4j/enums/internal/typeregistry"
)

// Groups

// Activation function groups.
var (
	ReluEnum      = activation.ReluEnum
	LinearEnum    = activation.LinearEnum
	SigmoidEnum   = activation.SigmoidEnum
	SoftmaxEnum   = activation.SoftmaxEnum
	LeakyReluEnum = activation.LeakyReluEnum
)

// Catalog holds the activation groups in declaration order.
var Catalog = activation.Catalog

// Types

// Type is an activation function type.
type Type = activation.Type

// Standard enumerates the activation function types supported out of the box.
type Standard = activation.Standard

// Standard activation function types.
const (
	RELU      = activation.RELU
	SIGMOID   = activation.SIGMOID
	LINEAR    = activation.LINEAR
	IDENTITY  = activation.IDENTITY
	LEAKYRELU = activation.LEAKYRELU
)

// Standards returns every Standard in declaration order.
func Standards() []Standard {
	return activation.Standards()
}

// ParseStandard returns the Standard named name.
func ParseStandard(name string) (Standard, error) {
	return activation.ParseStandard(name)
}

// Reverse lookup

// FindByQualifiedName returns the activation type with a visible member
// named name.
func FindByQualifiedName(name string) (Type, bool) {
	return activation.FindByQualifiedName(name)
}

// FindByReference returns the activation type containing ref.
func FindByReference(ref provider.Reference) (Type, bool) {
	return activation.FindByReference(ref)
}

// FindByValue returns the activation type of a live provider constant.
func FindByValue(reg typeregistry.Registry, value typeregistry.Enum) (Type, bool) {
	return activation.FindByValue(reg, value)
}

// Providers

// ML4JType is ML4J's native activation function enum.
type ML4JType = ml4j.ActivationFunctionBaseType

// ML4J activation function constants.
const (
	ML4JRelu    = ml4j.RELU
	ML4JSigmoid = ml4j.SIGMOID
	ML4JSoftmax = ml4j.SOFTMAX
	ML4JLinear  = ml4j.LINEAR
)

// ML4JTypeName is the qualified name of ML4JType.
var ML4JTypeName = ml4j.TypeName

// DL4JTypeName is the qualified name of the ND4J activation enum.
const DL4JTypeName = dl4j.ActivationTypeName

// LinkML4J registers ML4J's activation enum in types.
func LinkML4J(types *typeregistry.Types) error {
	return ml4j.Register(types)
}
