package activation

import "fmt"

// Standard enumerates the activation function types supported out of the box.
// LINEAR and IDENTITY name the same concept.
type Standard int

// Standard activation function types.
const (
	RELU Standard = iota
	SIGMOID
	LINEAR
	IDENTITY
	LEAKYRELU
)

var standardTypes = [...]Type{
	RELU:      NewType(ReluEnum),
	SIGMOID:   NewType(SigmoidEnum),
	LINEAR:    NewType(LinearEnum),
	IDENTITY:  NewType(LinearEnum),
	LEAKYRELU: NewType(LeakyReluEnum),
}

// Standards returns every Standard in declaration order.
func Standards() []Standard {
	return []Standard{RELU, SIGMOID, LINEAR, IDENTITY, LEAKYRELU}
}

// Type returns the activation function type of s.
func (s Standard) Type() Type {
	if s < 0 || int(s) >= len(standardTypes) {
		panic(fmt.Sprintf("activation: unknown standard type %d", int(s)))
	}
	return standardTypes[s]
}

// String returns the constant name.
func (s Standard) String() string {
	switch s {
	case RELU:
		return "RELU"
	case SIGMOID:
		return "SIGMOID"
	case LINEAR:
		return "LINEAR"
	case IDENTITY:
		return "IDENTITY"
	case LEAKYRELU:
		return "LEAKYRELU"
	default:
		return "UNKNOWN"
	}
}

// ParseStandard returns the Standard named name.
func ParseStandard(name string) (Standard, error) {
	for _, s := range Standards() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown standard activation function type: %q", name)
}
