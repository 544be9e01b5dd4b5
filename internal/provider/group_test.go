package provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ml4jRelu = NewReference(ML4J, "ActivationFunctionBaseType", "RELU")
	dl4jRelu = NewReference(DL4J, "Activation", "RELU")
)

func TestGroupProvidedBy(t *testing.T) {
	relu := MustGroup("RELU_ENUM", "Relu Enums", ml4jRelu, dl4jRelu)

	ref, err := relu.ProvidedBy(ML4J)
	require.NoError(t, err)
	assert.Equal(t, ml4jRelu, ref)
	assert.Equal(t, "ActivationFunctionBaseType.RELU", ref.QualifiedName())

	ref, err = relu.ProvidedBy(DL4J)
	require.NoError(t, err)
	assert.Equal(t, dl4jRelu, ref)

	_, err = relu.ProvidedBy("TENSORFLOW")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSuchProvider)

	var noSuch *NoSuchProviderError
	require.True(t, errors.As(err, &noSuch))
	assert.Equal(t, &NoSuchProviderError{Group: "RELU_ENUM", Provider: "TENSORFLOW"}, noSuch)
	assert.Equal(t, "RELU_ENUM does not include an enum from provider: TENSORFLOW", err.Error())
}

func TestGroupPlaceholders(t *testing.T) {
	placeholder := NewPlaceholder(DL4J, "LEAKYRELU", WithTypeName("tbc"))
	leaky := MustGroup("LEAKY_RELU_ENUM", "Leaky Relu Enums",
		NewReference(ML4J, "ActivationFunctionBaseType", "LEAKYRELU"),
		placeholder,
	)

	assert.Equal(t, []Provider{ML4J}, leaky.ProviderNames())
	assert.Contains(t, leaky.All(), placeholder)
	assert.Len(t, leaky.All(), 2)
	assert.False(t, leaky.HasQualifiedName(placeholder.QualifiedName()))
	assert.Equal(t, []string{"ActivationFunctionBaseType.LEAKYRELU"}, leaky.QualifiedNames())

	_, err := leaky.ProvidedBy(DL4J)
	assert.ErrorIs(t, err, ErrNoSuchProvider)
}

func TestGroupVisibleNames(t *testing.T) {
	linear := MustGroup("LINEAR_ENUM", "Linear Enums",
		NewReference(ML4J, "ActivationFunctionBaseType", "LINEAR"),
		NewReference(DL4J, "Activation", "IDENTITY"),
		NewReference("OTHER", "Kinds", "LINEAR"),
		NewPlaceholder("PENDING", "LINEAR"),
	)

	assert.Equal(t, []Provider{DL4J, ML4J, "OTHER"}, linear.ProviderNames())
	assert.Equal(t, []string{"IDENTITY", "LINEAR"}, linear.ConstantNames(), "constant names collapse")
	assert.Equal(t, []string{
		"Activation.IDENTITY",
		"ActivationFunctionBaseType.LINEAR",
		"Kinds.LINEAR",
	}, linear.QualifiedNames())
	assert.True(t, linear.HasQualifiedName("Activation.IDENTITY"))
	assert.False(t, linear.HasQualifiedName("Activation.LINEAR"))
}

func TestNewGroupDeduplicates(t *testing.T) {
	g, err := NewGroup("RELU_ENUM", "Relu Enums", ml4jRelu, dl4jRelu, ml4jRelu)
	require.NoError(t, err)
	assert.Equal(t, []Reference{ml4jRelu, dl4jRelu}, g.All())
}

func TestNewGroupRejectsDuplicateVisibleProvider(t *testing.T) {
	_, err := NewGroup("RELU_ENUM", "Relu Enums", ml4jRelu, NewReference(ML4J, "Other", "RELU"))
	assert.ErrorIs(t, err, ErrDuplicateProvider)

	// An invisible placeholder may share a provider with a visible member.
	_, err = NewGroup("RELU_ENUM", "Relu Enums", ml4jRelu, NewPlaceholder(ML4J, "RELU"))
	assert.NoError(t, err)

	assert.Panics(t, func() {
		MustGroup("RELU_ENUM", "Relu Enums", dl4jRelu, NewReference(DL4J, "Other", "RELU"))
	})
}

func TestGroupAllReturnsCopy(t *testing.T) {
	g := MustGroup("RELU_ENUM", "Relu Enums", ml4jRelu, dl4jRelu)
	all := g.All()
	all[0] = NewReference("X", "Y", "Z")
	assert.Equal(t, ml4jRelu, g.All()[0])
}

func TestGroupEqual(t *testing.T) {
	a := MustGroup("RELU_ENUM", "Relu Enums", ml4jRelu, dl4jRelu)
	b := MustGroup("RELU_ENUM", "Relu Enums", dl4jRelu, ml4jRelu)
	c := MustGroup("RELU_ENUM", "Relu Enums", ml4jRelu)
	d := MustGroup("SIGMOID_ENUM", "Relu Enums", ml4jRelu, dl4jRelu)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b), "member order is irrelevant")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "RELU_ENUM", a.String())
	assert.Equal(t, "Relu Enums", a.Label())
}
