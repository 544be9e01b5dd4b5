// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package provider links provider-agnostic concepts to the enum constants of
// concrete provider libraries.
//
// # Overview
//
// This package contains:
//   - Reference: a textual pointer (provider, type name, constant name) to a
//     provider enum constant, resolved lazily through a type registry
//   - Placeholders: invisible references reserving a slot for a provider
//     that does not implement a concept yet
//   - Group: the references of every provider for one concept
//
// # Basic Usage
//
//	import (
//	    "github.com/ml4j/enums/provider"
//	    "github.com/ml4j/enums/typeregistry"
//	)
//
//	func main() {
//	    relu := provider.MustGroup("RELU_ENUM", "Relu Enums",
//	        provider.NewReference(provider.ML4J, "ml4j.ActivationFunctionBaseType", "RELU"),
//	        provider.NewReference(provider.DL4J, "org.nd4j.linalg.activations.Activation", "RELU"),
//	    )
//
//	    ref, err := relu.ProvidedBy(provider.DL4J)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(ref.QualifiedName()) // no resolution needed
//
//	    value, err := ref.Resolve(types) // fails unless DL4J is registered
//	}
//
// # Errors
//
// Resolution failures match ErrUnresolved and carry an *UnresolvedError.
// Lookups for a provider without a visible member match ErrNoSuchProvider.
//
// # Visibility
//
// Reference.Visible is the only predicate groups filter on. Placeholders are
// invisible by default; a placeholder made visible takes part in lookups
// like any other reference.
package provider
