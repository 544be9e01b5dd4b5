// Package semantic binds provider-agnostic concepts to provider groups and
// provides reverse lookup from provider constants back to concepts.
package semantic

import (
	"github.com/ml4j/enums/internal/provider"
)

// Type is a provider-agnostic concept backed by a provider.Group.
// The group is shared with the catalog that declared it.
type Type struct {
	group *provider.Group
}

// New wraps a group.
func New(group *provider.Group) Type {
	return Type{group: group}
}

// Of returns the Type produced by factory.
func Of(factory func() Type) Type {
	return factory()
}

// Group returns the backing group.
func (t Type) Group() *provider.Group { return t.group }

// IsZero reports whether t has no backing group.
func (t Type) IsZero() bool { return t.group == nil }

// ProvidedBy returns the visible reference supplied by p.
func (t Type) ProvidedBy(p provider.Provider) (provider.Reference, error) {
	if t.group == nil {
		return provider.Reference{}, &provider.NoSuchProviderError{Provider: p}
	}
	return t.group.ProvidedBy(p)
}

// Equal reports whether both types are backed by equal groups.
func (t Type) Equal(other Type) bool {
	return t.group.Equal(other.group)
}

// String returns the group key.
func (t Type) String() string {
	if t.group == nil {
		return ""
	}
	return t.group.Key()
}
