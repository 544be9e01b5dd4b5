// Package dl4j holds the DL4J provider references.
//
// DL4J's activation enum lives in a library that is not linked into this
// module, so its constants are referenced by name only. Resolution succeeds
// only against a registry in which ActivationTypeName has been registered,
// for example by an adapter through RegisterLoader.
package dl4j

import (
	"github.com/ml4j/enums/internal/provider"
)

// Provider is the provider name of this package.
const Provider = provider.DL4J

// ActivationTypeName is the qualified name of the ND4J activation enum.
const ActivationTypeName = "org.nd4j.linalg.activations.Activation"

// Provider references to DL4J activation functions.
var (
	ReluRef      = newActivationRef("RELU")
	SigmoidRef   = newActivationRef("SIGMOID")
	SoftmaxRef   = newActivationRef("SOFTMAX")
	IdentityRef  = newActivationRef("IDENTITY")
	LeakyReluRef = newActivationRef("LEAKYRELU")
)

// References returns the DL4J references in declaration order.
func References() []provider.Reference {
	return []provider.Reference{ReluRef, SigmoidRef, SoftmaxRef, IdentityRef, LeakyReluRef}
}

func newActivationRef(constant string) provider.Reference {
	return provider.NewReference(Provider, ActivationTypeName, constant)
}
