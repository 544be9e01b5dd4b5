package typeregistry

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/viant/xreflect"
)

// PendingTypeName is the type name of references whose provider type is not
// known yet. It can never be registered.
const PendingTypeName = "tbc"

// Enum is a constant of a provider enum type. String returns the constant name.
type Enum interface {
	String() string
}

// Registry resolves enum constants by qualified type name and constant name.
type Registry interface {
	// LookupConstant returns the constant of the named type whose String()
	// equals constantName. It fails with ErrTypeNotFound or ErrConstantNotFound.
	LookupConstant(typeName, constantName string) (Enum, error)

	// TypeNameOf returns the qualified type name under which value's type is
	// known to the registry.
	TypeNameOf(value Enum) string
}

// Loader produces the constants of a lazily registered type.
type Loader func() ([]Enum, error)

// Option configures Types.
type Option func(*Types)

// WithLogger sets the logger used for registration and lazy loading events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Types) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Types is a Registry backed by a named reflect.Type table.
//
// Qualified names are split at the last '.' into a package and a type name,
// so both Go names ("github.com/org/pkg.Kind") and foreign names
// ("org.nd4j.linalg.activations.Activation") are accepted.
type Types struct {
	mu        sync.RWMutex
	named     *xreflect.Types
	constants map[reflect.Type][]Enum
	names     map[reflect.Type]string
	loaders   map[string]Loader
	failed    map[string]error
	logger    *slog.Logger
}

// NewTypes creates an empty registry.
func NewTypes(opts ...Option) *Types {
	t := &Types{
		named:     xreflect.NewTypes(),
		constants: make(map[reflect.Type][]Enum),
		names:     make(map[reflect.Type]string),
		loaders:   make(map[string]Loader),
		failed:    make(map[string]error),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Register links the type of values under its Go qualified name.
// All values must share one type.
func (t *Types) Register(values ...Enum) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no constants given", ErrInvalidType)
	}
	return t.RegisterAs(TypeName(values[0]), values...)
}

// RegisterAs links the type of values under typeName.
func (t *Types) RegisterAs(typeName string, values ...Enum) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, pending := t.loaders[typeName]; pending {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, typeName)
	}
	return t.registerLocked(typeName, values)
}

// RegisterLoader defers registration of typeName until it is first looked up.
// The loader runs at most once; its outcome, success or failure, is kept.
// Loaders must not call back into the registry.
func (t *Types) RegisterLoader(typeName string, load Loader) error {
	if load == nil {
		return fmt.Errorf("%w: nil loader for %s", ErrInvalidType, typeName)
	}
	if err := validateName(typeName); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, pending := t.loaders[typeName]; pending || t.knownLocked(typeName) {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, typeName)
	}
	t.loaders[typeName] = load
	return nil
}

// LookupConstant implements Registry.
func (t *Types) LookupConstant(typeName, constantName string) (Enum, error) {
	if err := t.load(typeName); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	rType, err := t.lookupLocked(typeName)
	if err != nil {
		return nil, err
	}
	for _, value := range t.constants[rType] {
		if value.String() == constantName {
			return value, nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrConstantNotFound, typeName, constantName)
}

// TypeNameOf implements Registry. A value of an unknown type runs the
// pending loaders before giving up. Types that were never registered report
// their Go qualified name.
func (t *Types) TypeNameOf(value Enum) string {
	rType := reflect.TypeOf(value)
	if name, ok := t.nameOf(rType); ok {
		return name
	}

	t.mu.RLock()
	pending := make([]string, 0, len(t.loaders))
	for typeName := range t.loaders {
		pending = append(pending, typeName)
	}
	t.mu.RUnlock()

	slices.Sort(pending)
	for _, typeName := range pending {
		// Failures are cached by load and surface on LookupConstant.
		_ = t.load(typeName)
		if name, ok := t.nameOf(rType); ok {
			return name
		}
	}
	return TypeName(value)
}

func (t *Types) nameOf(rType reflect.Type) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.names[rType]
	return name, ok
}

// TypeNames returns the sorted names of all registered types, including
// those whose loaders have not run yet.
func (t *Types) TypeNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.names)+len(t.loaders))
	for _, name := range t.names {
		names = append(names, name)
	}
	for name := range t.loaders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (t *Types) load(typeName string) error {
	t.mu.RLock()
	load, pending := t.loaders[typeName]
	failure := t.failed[typeName]
	t.mu.RUnlock()
	if failure != nil {
		return failure
	}
	if !pending {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Another caller may have run the loader between the two locks.
	if failure := t.failed[typeName]; failure != nil {
		return failure
	}
	if _, pending = t.loaders[typeName]; !pending {
		return nil
	}
	delete(t.loaders, typeName)

	values, err := load()
	if err == nil {
		err = t.registerLocked(typeName, values)
	}
	if err != nil {
		t.failed[typeName] = fmt.Errorf("%w: %s: load: %w", ErrTypeNotFound, typeName, err)
		t.logger.Warn("enum type failed to load", slog.String("type", typeName), slog.String("error", err.Error()))
		return t.failed[typeName]
	}
	t.logger.Debug("enum type loaded", slog.String("type", typeName), slog.Int("constants", len(values)))
	return nil
}

func (t *Types) registerLocked(typeName string, values []Enum) error {
	if err := validateName(typeName); err != nil {
		return err
	}
	rType, err := typeOf(values)
	if err != nil {
		return fmt.Errorf("%s: %w", typeName, err)
	}
	if t.knownLocked(typeName) {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, typeName)
	}
	if existing, ok := t.names[rType]; ok {
		return fmt.Errorf("%w: %s is already registered as %s", ErrAlreadyRegistered, rType, existing)
	}

	pkg, name := splitName(typeName)
	opts := []xreflect.Option{xreflect.WithReflectType(rType)}
	if pkg != "" {
		opts = append(opts, xreflect.WithPackage(pkg))
	}
	if err := t.named.Register(name, opts...); err != nil {
		return fmt.Errorf("register %s: %w", typeName, err)
	}

	t.constants[rType] = append([]Enum(nil), values...)
	t.names[rType] = typeName
	t.logger.Debug("enum type registered", slog.String("type", typeName), slog.Int("constants", len(values)))
	return nil
}

func (t *Types) knownLocked(typeName string) bool {
	_, err := t.lookupLocked(typeName)
	return err == nil
}

func (t *Types) lookupLocked(typeName string) (reflect.Type, error) {
	pkg, name := splitName(typeName)
	var opts []xreflect.Option
	if pkg != "" {
		opts = append(opts, xreflect.WithPackage(pkg))
	}
	rType, err := t.named.Lookup(name, opts...)
	if err != nil || rType == nil {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName)
	}
	// The named table also knows builtin types; only types with a constant
	// table count as enum types.
	if _, ok := t.constants[rType]; !ok || t.names[rType] != typeName {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName)
	}
	return rType, nil
}

func typeOf(values []Enum) (reflect.Type, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no constants given", ErrInvalidType)
	}
	rType := reflect.TypeOf(values[0])
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		if reflect.TypeOf(value) != rType {
			return nil, fmt.Errorf("%w: mixed constant types %s and %T", ErrInvalidType, rType, value)
		}
		constant := value.String()
		if constant == "" {
			return nil, fmt.Errorf("%w: empty constant name", ErrInvalidType)
		}
		if seen[constant] {
			return nil, fmt.Errorf("%w: duplicate constant %s", ErrInvalidType, constant)
		}
		seen[constant] = true
	}
	return rType, nil
}

func validateName(typeName string) error {
	if typeName == PendingTypeName {
		return fmt.Errorf("%w: %q is reserved for pending types", ErrInvalidType, typeName)
	}
	_, name := splitName(typeName)
	if name == "" {
		return fmt.Errorf("%w: empty type name in %q", ErrInvalidType, typeName)
	}
	return nil
}

func splitName(typeName string) (pkg, name string) {
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		return typeName[:i], typeName[i+1:]
	}
	return "", typeName
}

// TypeName returns the Go qualified name of v's type, "pkgpath.Name".
// Unnamed and builtin types report their reflect string.
func TypeName(v any) string {
	rType := reflect.TypeOf(v)
	if rType == nil {
		return ""
	}
	if rType.PkgPath() == "" || rType.Name() == "" {
		return rType.String()
	}
	return rType.PkgPath() + "." + rType.Name()
}
