// Package provider links provider-agnostic concepts to the enum constants of
// concrete provider libraries.
//
// A Reference names a remote constant textually and resolves it through a
// typeregistry.Registry only when asked. A Group collects the references of
// every provider for one concept.
package provider

import (
	"fmt"

	"github.com/ml4j/enums/internal/typeregistry"
)

// Provider names a library that supplies enum constants.
type Provider string

// Known providers.
const (
	ML4J Provider = "ML4J"
	DL4J Provider = "DL4J"
)

// PendingTypeName is the type name of placeholders whose type is not known yet.
const PendingTypeName = typeregistry.PendingTypeName

// Reference is a textual pointer to a constant of a provider enum type.
//
// References are comparable values: two references are equal when provider,
// type name, constant name and visibility are equal.
type Reference struct {
	provider     Provider
	typeName     string
	constantName string
	visible      bool
}

// NewReference creates a visible reference to typeName.constantName.
func NewReference(p Provider, typeName, constantName string) Reference {
	return Reference{
		provider:     p,
		typeName:     typeName,
		constantName: constantName,
		visible:      true,
	}
}

// ReferenceTo creates a visible reference to a live constant, named after the
// constant's Go type. Use ReferenceIn for types registered under a foreign
// name.
func ReferenceTo(p Provider, value typeregistry.Enum) Reference {
	return NewReference(p, typeregistry.TypeName(value), value.String())
}

// ReferenceIn creates a visible reference to a live constant, named after the
// type name reg knows the constant's type by.
func ReferenceIn(p Provider, reg typeregistry.Registry, value typeregistry.Enum) Reference {
	return NewReference(p, reg.TypeNameOf(value), value.String())
}

// PlaceholderOption configures a placeholder reference.
type PlaceholderOption func(*Reference)

// WithTypeName sets the placeholder's type name when it is already known.
func WithTypeName(typeName string) PlaceholderOption {
	return func(r *Reference) {
		r.typeName = typeName
	}
}

// WithVisible overrides the placeholder's visibility.
func WithVisible(visible bool) PlaceholderOption {
	return func(r *Reference) {
		r.visible = visible
	}
}

// NewPlaceholder reserves a slot for a provider that has no implementation of
// a concept yet. It is invisible and has the pending type name unless
// overridden.
func NewPlaceholder(p Provider, constantName string, opts ...PlaceholderOption) Reference {
	r := Reference{
		provider:     p,
		typeName:     PendingTypeName,
		constantName: constantName,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Provider returns the provider name.
func (r Reference) Provider() Provider { return r.provider }

// TypeName returns the qualified name of the enum type.
func (r Reference) TypeName() string { return r.typeName }

// ConstantName returns the name of the enum constant.
func (r Reference) ConstantName() string { return r.constantName }

// Visible reports whether the reference takes part in lookups.
// It is the only visibility predicate used by Group.
func (r Reference) Visible() bool { return r.visible }

// Pending reports whether the type name is still the placeholder sentinel.
func (r Reference) Pending() bool { return r.typeName == PendingTypeName }

// QualifiedName returns "typeName.constantName". It never resolves anything.
func (r Reference) QualifiedName() string {
	return r.typeName + "." + r.constantName
}

// DisplayName returns "provider:typeName.constantName".
func (r Reference) DisplayName() string {
	return string(r.provider) + ":" + r.QualifiedName()
}

// String implements fmt.Stringer.
func (r Reference) String() string {
	return r.DisplayName()
}

// Equal reports structural equality.
func (r Reference) Equal(other Reference) bool {
	return r == other
}

// Resolve looks up the referenced constant in reg.
// Every failure is an *UnresolvedError matching ErrUnresolved.
func (r Reference) Resolve(reg typeregistry.Registry) (typeregistry.Enum, error) {
	if r.typeName == "" || r.Pending() {
		return nil, r.unresolved(fmt.Errorf("%w: %s", typeregistry.ErrTypeNotFound, r.typeName))
	}
	value, err := reg.LookupConstant(r.typeName, r.constantName)
	if err != nil {
		return nil, r.unresolved(err)
	}
	return value, nil
}

// ResolveAs resolves r and asserts the constant's type.
func ResolveAs[T typeregistry.Enum](r Reference, reg typeregistry.Registry) (T, error) {
	var zero T
	value, err := r.Resolve(reg)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, r.unresolved(fmt.Errorf("%w: got %T, want %T", ErrTypeMismatch, value, zero))
	}
	return typed, nil
}

func (r Reference) unresolved(err error) error {
	return &UnresolvedError{
		Provider:     r.provider,
		TypeName:     r.typeName,
		ConstantName: r.constantName,
		Err:          err,
	}
}
