package dl4j

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/typeregistry"
)

// activation stands in for the ND4J enum in tests.
type activation string

func (a activation) String() string { return string(a) }

func TestReferences(t *testing.T) {
	var names []string
	for _, ref := range References() {
		assert.Equal(t, provider.DL4J, ref.Provider())
		assert.Equal(t, ActivationTypeName, ref.TypeName())
		names = append(names, ref.ConstantName())
	}
	assert.Equal(t, []string{"RELU", "SIGMOID", "SOFTMAX", "IDENTITY", "LEAKYRELU"}, names)
	assert.Equal(t, "org.nd4j.linalg.activations.Activation.IDENTITY", IdentityRef.QualifiedName())
}

func TestResolveFailsWhenLibraryAbsent(t *testing.T) {
	_, err := ReluRef.Resolve(typeregistry.NewTypes())
	assert.ErrorIs(t, err, provider.ErrUnresolved)
	assert.ErrorIs(t, err, typeregistry.ErrTypeNotFound)
}

func TestResolveThroughLoader(t *testing.T) {
	types := typeregistry.NewTypes()
	require.NoError(t, types.RegisterLoader(ActivationTypeName, func() ([]typeregistry.Enum, error) {
		return []typeregistry.Enum{activation("RELU"), activation("SIGMOID"), activation("IDENTITY")}, nil
	}))

	value, err := IdentityRef.Resolve(types)
	require.NoError(t, err)
	assert.Equal(t, activation("IDENTITY"), value)

	_, err = LeakyReluRef.Resolve(types)
	assert.ErrorIs(t, err, typeregistry.ErrConstantNotFound)
}
