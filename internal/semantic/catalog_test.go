package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/typeregistry"
)

type op string

func (o op) String() string { return string(o) }

var (
	addRef = provider.ReferenceTo(provider.ML4J, op("ADD"))
	subRef = provider.ReferenceTo(provider.ML4J, op("SUB"))

	addGroup = provider.MustGroup("ADD_ENUM", "Add Enums",
		addRef,
		provider.NewReference(provider.DL4J, "org.example.Op", "ADD"),
	)
	subGroup = provider.MustGroup("SUB_ENUM", "Sub Enums",
		subRef,
		provider.NewPlaceholder(provider.DL4J, "SUB"),
	)
	// Shares a qualified name with addGroup to check declaration order.
	plusGroup = provider.MustGroup("PLUS_ENUM", "Plus Enums", addRef)
)

func TestCatalogLookup(t *testing.T) {
	c := MustCatalog(addGroup, subGroup)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []*provider.Group{addGroup, subGroup}, c.Groups())

	typ, ok := c.Lookup("SUB_ENUM")
	require.True(t, ok)
	assert.Same(t, subGroup, typ.Group())

	_, ok = c.Lookup("MUL_ENUM")
	assert.False(t, ok)
}

func TestCatalogRejectsDuplicateKeys(t *testing.T) {
	_, err := NewCatalog(addGroup, addGroup)
	assert.ErrorIs(t, err, ErrDuplicateGroup)

	_, err = NewCatalog(addGroup, nil)
	assert.Error(t, err)

	assert.Panics(t, func() { MustCatalog(subGroup, subGroup) })
}

func TestFindByQualifiedName(t *testing.T) {
	c := MustCatalog(addGroup, subGroup, plusGroup)

	for _, g := range c.Groups() {
		for _, ref := range g.All() {
			if !ref.Visible() {
				continue
			}
			typ, ok := c.FindByQualifiedName(ref.QualifiedName())
			require.True(t, ok, ref.String())
			assert.True(t, typ.Group().HasQualifiedName(ref.QualifiedName()))
		}
	}

	typ, ok := c.FindByQualifiedName(addRef.QualifiedName())
	require.True(t, ok)
	assert.Same(t, addGroup, typ.Group(), "first declared group wins")

	_, ok = c.FindByQualifiedName("tbc.SUB")
	assert.False(t, ok, "placeholders never match")

	_, ok = c.FindByQualifiedName("org.example.Op.MUL")
	assert.False(t, ok)
}

func TestFindByReference(t *testing.T) {
	c := MustCatalog(addGroup, subGroup)

	typ, ok := c.FindByReference(subRef)
	require.True(t, ok)
	assert.True(t, typ.Equal(New(subGroup)))
}

func TestFindByValue(t *testing.T) {
	c := MustCatalog(addGroup, subGroup)
	types := typeregistry.NewTypes()

	typ, ok := c.FindByValue(types, op("SUB"))
	require.True(t, ok)
	assert.Same(t, subGroup, typ.Group())

	_, ok = c.FindByValue(types, nil)
	assert.False(t, ok)

	// Once registered under a foreign name, values are matched by that name.
	require.NoError(t, types.RegisterAs("org.example.Op", op("ADD"), op("SUB")))
	typ, ok = c.FindByValue(types, op("ADD"))
	require.True(t, ok)
	assert.Same(t, addGroup, typ.Group())

	_, ok = c.FindByValue(types, op("SUB"))
	assert.False(t, ok, "DL4J SUB is only a placeholder")
}
