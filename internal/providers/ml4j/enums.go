package ml4j

import (
	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/typeregistry"
)

// Provider references to ML4J activation functions.
var (
	ReluRef    = provider.ReferenceTo(Provider, RELU)
	SigmoidRef = provider.ReferenceTo(Provider, SIGMOID)
	SoftmaxRef = provider.ReferenceTo(Provider, SOFTMAX)
	LinearRef  = provider.ReferenceTo(Provider, LINEAR)
)

// References returns the ML4J references in declaration order.
func References() []provider.Reference {
	return []provider.Reference{ReluRef, SigmoidRef, SoftmaxRef, LinearRef}
}

// Register links ActivationFunctionBaseType into types.
func Register(types *typeregistry.Types) error {
	return types.Register(Values()...)
}
