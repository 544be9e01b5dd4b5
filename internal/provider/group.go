package provider

import (
	"fmt"
	"slices"
)

// Group holds the per-provider references of one concept.
//
// Members are unique under structural equality and at most one member per
// provider is visible. Groups are immutable once built.
type Group struct {
	key     string
	label   string
	members []Reference
}

// NewGroup builds a group from refs, dropping structural duplicates.
// It fails with ErrDuplicateProvider if two distinct visible references share
// a provider.
func NewGroup(key, label string, refs ...Reference) (*Group, error) {
	g := &Group{key: key, label: label}
	visible := make(map[Provider]Reference)
	seen := make(map[Reference]bool, len(refs))
	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		if ref.Visible() {
			if other, ok := visible[ref.Provider()]; ok {
				return nil, fmt.Errorf("%w: group %s has %s and %s", ErrDuplicateProvider, key, other, ref)
			}
			visible[ref.Provider()] = ref
		}
		g.members = append(g.members, ref)
	}
	return g, nil
}

// MustGroup is like NewGroup but panics on error. It is meant for static
// catalog tables.
func MustGroup(key, label string, refs ...Reference) *Group {
	g, err := NewGroup(key, label, refs...)
	if err != nil {
		panic(err)
	}
	return g
}

// Key returns the catalog identifier of the group, e.g. "RELU_ENUM".
func (g *Group) Key() string { return g.key }

// Label returns the human readable concept name.
func (g *Group) Label() string { return g.label }

// String implements fmt.Stringer.
func (g *Group) String() string { return g.key }

// All returns every member, placeholders included.
func (g *Group) All() []Reference {
	return append([]Reference(nil), g.members...)
}

// ProvidedBy returns the visible member supplied by p.
func (g *Group) ProvidedBy(p Provider) (Reference, error) {
	for _, ref := range g.members {
		if ref.Visible() && ref.Provider() == p {
			return ref, nil
		}
	}
	return Reference{}, &NoSuchProviderError{Group: g.key, Provider: p}
}

// ProviderNames returns the sorted providers with a visible member.
func (g *Group) ProviderNames() []Provider {
	names := collect(g.members, func(r Reference) Provider { return r.Provider() })
	slices.Sort(names)
	return names
}

// ConstantNames returns the sorted constant names of visible members.
// Equal names from different providers collapse into one entry.
func (g *Group) ConstantNames() []string {
	names := collect(g.members, Reference.ConstantName)
	slices.Sort(names)
	return names
}

// QualifiedNames returns the sorted qualified names of visible members.
func (g *Group) QualifiedNames() []string {
	names := collect(g.members, Reference.QualifiedName)
	slices.Sort(names)
	return names
}

// HasQualifiedName reports whether a visible member has the qualified name.
func (g *Group) HasQualifiedName(name string) bool {
	for _, ref := range g.members {
		if ref.Visible() && ref.QualifiedName() == name {
			return true
		}
	}
	return false
}

// Equal reports whether both groups have the same key, label and members.
func (g *Group) Equal(other *Group) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil || g.key != other.key || g.label != other.label || len(g.members) != len(other.members) {
		return false
	}
	members := make(map[Reference]bool, len(g.members))
	for _, ref := range g.members {
		members[ref] = true
	}
	for _, ref := range other.members {
		if !members[ref] {
			return false
		}
	}
	return true
}

func collect[T comparable](refs []Reference, field func(Reference) T) []T {
	seen := make(map[T]bool)
	var out []T
	for _, ref := range refs {
		if !ref.Visible() {
			continue
		}
		v := field(ref)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
