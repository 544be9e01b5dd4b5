package semantic

import (
	"errors"
	"fmt"

	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/typeregistry"
)

// ErrDuplicateGroup is returned when two catalog groups share a key.
var ErrDuplicateGroup = errors.New("duplicate group key")

// Catalog is an ordered, immutable table of concept groups.
// Reverse lookups scan the groups in declaration order.
type Catalog struct {
	groups []*provider.Group
	byKey  map[string]*provider.Group
}

// NewCatalog builds a catalog from groups in declaration order.
func NewCatalog(groups ...*provider.Group) (*Catalog, error) {
	c := &Catalog{
		groups: make([]*provider.Group, 0, len(groups)),
		byKey:  make(map[string]*provider.Group, len(groups)),
	}
	for _, g := range groups {
		if g == nil {
			return nil, errors.New("nil group")
		}
		if _, exists := c.byKey[g.Key()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGroup, g.Key())
		}
		c.byKey[g.Key()] = g
		c.groups = append(c.groups, g)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(groups ...*provider.Group) *Catalog {
	c, err := NewCatalog(groups...)
	if err != nil {
		panic(err)
	}
	return c
}

// Groups returns the groups in declaration order.
func (c *Catalog) Groups() []*provider.Group {
	return append([]*provider.Group(nil), c.groups...)
}

// Len returns the number of groups.
func (c *Catalog) Len() int { return len(c.groups) }

// Lookup returns the type for a group key.
func (c *Catalog) Lookup(key string) (Type, bool) {
	g, ok := c.byKey[key]
	if !ok {
		return Type{}, false
	}
	return New(g), true
}

// FindByQualifiedName returns the first group, in declaration order, with a
// visible member named name.
func (c *Catalog) FindByQualifiedName(name string) (Type, bool) {
	for _, g := range c.groups {
		if g.HasQualifiedName(name) {
			return New(g), true
		}
	}
	return Type{}, false
}

// FindByReference is FindByQualifiedName(ref.QualifiedName()).
func (c *Catalog) FindByReference(ref provider.Reference) (Type, bool) {
	return c.FindByQualifiedName(ref.QualifiedName())
}

// FindByValue finds the concept of a live constant, named the way reg knows
// its type.
func (c *Catalog) FindByValue(reg typeregistry.Registry, value typeregistry.Enum) (Type, bool) {
	if value == nil {
		return Type{}, false
	}
	return c.FindByQualifiedName(reg.TypeNameOf(value) + "." + value.String())
}
