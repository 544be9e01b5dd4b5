package catalog

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ml4j/enums/internal/activation"
	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/semantic"
)

const sample = `
groups:
  - key: RELU_ENUM
    label: Relu Enums
    members:
      - provider: ML4J
        type: ActivationFunctionBaseType
        constant: RELU
      - provider: DL4J
        type: Activation
        constant: RELU
  - key: LEAKY_RELU_ENUM
    members:
      - provider: ML4J
        constant: LEAKYRELU
      - provider: DL4J
        type: Activation
        constant: LEAKYRELU
      - provider: TENSORFLOW
        type: tf.Activation
        constant: LEAKY_RELU
        visible: false
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	relu, ok := c.Lookup("RELU_ENUM")
	require.True(t, ok)
	assert.Equal(t, "Relu Enums", relu.Group().Label())
	ref, err := relu.ProvidedBy(provider.ML4J)
	require.NoError(t, err)
	assert.Equal(t, provider.NewReference(provider.ML4J, "ActivationFunctionBaseType", "RELU"), ref)

	leaky, ok := c.Lookup("LEAKY_RELU_ENUM")
	require.True(t, ok)
	assert.Equal(t, "LEAKY_RELU_ENUM", leaky.Group().Label(), "label defaults to key")
	assert.Equal(t, []provider.Provider{provider.DL4J}, leaky.Group().ProviderNames())
	assert.Contains(t, leaky.Group().All(), provider.NewPlaceholder(provider.ML4J, "LEAKYRELU"))
	assert.Contains(t, leaky.Group().All(),
		provider.NewPlaceholder("TENSORFLOW", "LEAKY_RELU", provider.WithTypeName("tf.Activation")))

	typ, ok := c.FindByQualifiedName("Activation.LEAKYRELU")
	require.True(t, ok)
	assert.True(t, typ.Equal(leaky))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "groups: ["},
		{"empty", "groups: []"},
		{"missing key", "groups:\n  - members:\n      - {provider: ML4J, type: T, constant: A}\n"},
		{"no members", "groups:\n  - key: A\n"},
		{"missing constant", "groups:\n  - key: A\n    members:\n      - {provider: ML4J, type: T}\n"},
		{"missing provider", "groups:\n  - key: A\n    members:\n      - {type: T, constant: A}\n"},
		{"duplicate provider", "groups:\n  - key: A\n    members:\n      - {provider: ML4J, type: T, constant: A}\n      - {provider: ML4J, type: U, constant: A}\n"},
		{"duplicate key", "groups:\n  - key: A\n    members:\n      - {provider: ML4J, type: T, constant: A}\n  - key: A\n    members:\n      - {provider: ML4J, type: T, constant: B}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}

	_, err := Parse([]byte("groups:\n  - key: A\n    members:\n      - {provider: ML4J, type: T, constant: A}\n      - {provider: ML4J, type: U, constant: A}\n"))
	assert.ErrorIs(t, err, provider.ErrDuplicateProvider)

	_, err = Parse([]byte("groups:\n  - key: A\n    members:\n      - {provider: ML4J, type: T, constant: A}\n  - key: A\n    members:\n      - {provider: ML4J, type: T, constant: B}\n"))
	assert.ErrorIs(t, err, semantic.ErrDuplicateGroup)
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, c := range []*semantic.Catalog{activation.Catalog, mustParse(t, sample)} {
		data, err := Marshal(c)
		require.NoError(t, err)

		parsed, err := Parse(data)
		require.NoError(t, err)
		require.Equal(t, c.Len(), parsed.Len())
		for i, g := range c.Groups() {
			assert.True(t, g.Equal(parsed.Groups()[i]), g.Key())
		}
	}
}

func TestMarshalOmitsDefaults(t *testing.T) {
	data, err := Marshal(activation.Catalog)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "key: LEAKY_RELU_ENUM")
	assert.Contains(t, out, "constant: LEAKYRELU")
	assert.NotContains(t, out, "visible:")
	assert.NotContains(t, out, "type: tbc")
}

func TestLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := NewLoader(logger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Contains(t, logs.String(), "key=RELU_ENUM")
	assert.Contains(t, logs.String(), "groups=2")

	_, err = NewLoader(nil).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func mustParse(t *testing.T, doc string) *semantic.Catalog {
	t.Helper()
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	return c
}
