// Package ml4j is the ML4J provider: its native activation function enum and
// the provider references to it.
package ml4j

import (
	"math"

	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/typeregistry"
)

// Provider is the provider name of this package.
const Provider = provider.ML4J

// ActivationFunctionBaseType enumerates the activation functions ML4J
// implements natively.
type ActivationFunctionBaseType int

// Activation function base types.
const (
	RELU ActivationFunctionBaseType = iota
	SIGMOID
	SOFTMAX
	LINEAR
)

// TypeName is the qualified name of ActivationFunctionBaseType.
var TypeName = typeregistry.TypeName(RELU)

// Values returns every ActivationFunctionBaseType in declaration order.
func Values() []typeregistry.Enum {
	return []typeregistry.Enum{RELU, SIGMOID, SOFTMAX, LINEAR}
}

// String returns the constant name.
func (t ActivationFunctionBaseType) String() string {
	switch t {
	case RELU:
		return "RELU"
	case SIGMOID:
		return "SIGMOID"
	case SOFTMAX:
		return "SOFTMAX"
	case LINEAR:
		return "LINEAR"
	default:
		return "UNKNOWN"
	}
}

// Apply evaluates the activation on x and returns a new slice.
// SOFTMAX normalizes over the whole of x.
func (t ActivationFunctionBaseType) Apply(x []float64) []float64 {
	out := make([]float64, len(x))
	switch t {
	case RELU:
		for i, v := range x {
			out[i] = math.Max(0, v)
		}
	case SIGMOID:
		for i, v := range x {
			out[i] = 1.0 / (1.0 + math.Exp(-v))
		}
	case SOFTMAX:
		softmax(out, x)
	case LINEAR:
		copy(out, x)
	default:
		panic("ml4j: unknown activation function " + t.String())
	}
	return out
}

func softmax(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	// Subtract max for numerical stability
	maxVal := math.Inf(-1)
	for _, v := range src {
		if v > maxVal {
			maxVal = v
		}
	}

	var sum float64
	for i, v := range src {
		dst[i] = math.Exp(v - maxVal)
		sum += dst[i]
	}
	for i := range dst {
		dst[i] /= sum
	}
}
