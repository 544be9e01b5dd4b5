// Package activation is the catalog of activation function concepts across
// the ML4J and DL4J providers.
package activation

import (
	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/providers/dl4j"
	"github.com/ml4j/enums/internal/providers/ml4j"
	"github.com/ml4j/enums/internal/semantic"
	"github.com/ml4j/enums/internal/typeregistry"
)

// Activation function groups.
var (
	ReluEnum = provider.MustGroup("RELU_ENUM", "Relu Enums",
		ml4j.ReluRef,
		dl4j.ReluRef,
	)

	LinearEnum = provider.MustGroup("LINEAR_ENUM", "Linear Enums",
		ml4j.LinearRef,
		dl4j.IdentityRef,
	)

	SigmoidEnum = provider.MustGroup("SIGMOID_ENUM", "Sigmoid Enums",
		ml4j.SigmoidRef,
		dl4j.SigmoidRef,
	)

	SoftmaxEnum = provider.MustGroup("SOFTMAX_ENUM", "Softmax Enums",
		ml4j.SoftmaxRef,
		dl4j.SoftmaxRef,
	)

	// ML4J has no leaky ReLU yet.
	LeakyReluEnum = provider.MustGroup("LEAKY_RELU_ENUM", "Leaky Relu Enums",
		provider.NewPlaceholder(ml4j.Provider, "LEAKYRELU"),
		dl4j.LeakyReluRef,
	)
)

// Catalog holds the activation groups in declaration order.
var Catalog = semantic.MustCatalog(ReluEnum, LinearEnum, SigmoidEnum, SoftmaxEnum, LeakyReluEnum)

// Type is an activation function type.
type Type struct {
	semantic.Type
}

// NewType wraps an activation group.
func NewType(group *provider.Group) Type {
	return Type{Type: semantic.New(group)}
}

// Equal reports whether both types are backed by equal groups.
func (t Type) Equal(other Type) bool {
	return t.Type.Equal(other.Type)
}

// FindByQualifiedName returns the activation type with a visible member
// named name.
func FindByQualifiedName(name string) (Type, bool) {
	return wrap(Catalog.FindByQualifiedName(name))
}

// FindByReference returns the activation type containing ref.
func FindByReference(ref provider.Reference) (Type, bool) {
	return wrap(Catalog.FindByReference(ref))
}

// FindByValue returns the activation type of a live provider constant.
func FindByValue(reg typeregistry.Registry, value typeregistry.Enum) (Type, bool) {
	return wrap(Catalog.FindByValue(reg, value))
}

func wrap(t semantic.Type, ok bool) (Type, bool) {
	if !ok {
		return Type{}, false
	}
	return Type{Type: t}, true
}
