// Package catalog reads and writes semantic catalogs as YAML documents.
//
// A document lists groups in declaration order:
//
//	groups:
//	  - key: RELU_ENUM
//	    label: Relu Enums
//	    members:
//	      - provider: ML4J
//	        type: github.com/ml4j/enums/internal/providers/ml4j.ActivationFunctionBaseType
//	        constant: RELU
//	      - provider: DL4J
//	        constant: LEAKYRELU # no type: placeholder, invisible by default
//
// A member is visible unless it has no type or sets visible: false.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ml4j/enums/internal/provider"
	"github.com/ml4j/enums/internal/semantic"
)

// ErrInvalidCatalog is returned for malformed catalog documents.
var ErrInvalidCatalog = errors.New("invalid catalog")

type document struct {
	Groups []groupSpec `yaml:"groups"`
}

type groupSpec struct {
	Key     string       `yaml:"key"`
	Label   string       `yaml:"label,omitempty"`
	Members []memberSpec `yaml:"members"`
}

type memberSpec struct {
	Provider string `yaml:"provider"`
	Type     string `yaml:"type,omitempty"`
	Constant string `yaml:"constant"`
	Visible  *bool  `yaml:"visible,omitempty"`
}

// Parse decodes a catalog document.
func Parse(data []byte) (*semantic.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if len(doc.Groups) == 0 {
		return nil, fmt.Errorf("%w: no groups", ErrInvalidCatalog)
	}

	groups := make([]*provider.Group, 0, len(doc.Groups))
	for i, spec := range doc.Groups {
		g, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("%w: group %d (%s): %w", ErrInvalidCatalog, i, spec.Key, err)
		}
		groups = append(groups, g)
	}

	c, err := semantic.NewCatalog(groups...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return c, nil
}

// LoadFromFile reads and parses a catalog file.
func LoadFromFile(path string) (*semantic.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes c so that Parse returns an equal catalog.
func Marshal(c *semantic.Catalog) ([]byte, error) {
	doc := document{Groups: make([]groupSpec, 0, c.Len())}
	for _, g := range c.Groups() {
		spec := groupSpec{Key: g.Key(), Label: g.Label()}
		for _, ref := range g.All() {
			member := memberSpec{
				Provider: string(ref.Provider()),
				Constant: ref.ConstantName(),
			}
			if !ref.Pending() {
				member.Type = ref.TypeName()
			}
			if ref.Visible() != member.defaultVisible() {
				visible := ref.Visible()
				member.Visible = &visible
			}
			spec.Members = append(spec.Members, member)
		}
		doc.Groups = append(doc.Groups, spec)
	}
	return yaml.Marshal(&doc)
}

// Loader loads catalog files and logs what it loaded.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the catalog at path.
func (l *Loader) Load(path string) (*semantic.Catalog, error) {
	c, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	for _, g := range c.Groups() {
		l.logger.Debug("Loaded catalog group",
			slog.String("key", g.Key()),
			slog.Int("members", len(g.All())),
			slog.Int("visible", len(g.ProviderNames())))
	}
	l.logger.Info("Loaded catalog", slog.String("path", path), slog.Int("groups", c.Len()))
	return c, nil
}

func (s groupSpec) build() (*provider.Group, error) {
	if s.Key == "" {
		return nil, errors.New("key is required")
	}
	if len(s.Members) == 0 {
		return nil, errors.New("at least one member is required")
	}
	label := s.Label
	if label == "" {
		label = s.Key
	}

	refs := make([]provider.Reference, 0, len(s.Members))
	for i, m := range s.Members {
		if m.Provider == "" || m.Constant == "" {
			return nil, fmt.Errorf("member %d: provider and constant are required", i)
		}
		typeName := m.Type
		if typeName == "" {
			typeName = provider.PendingTypeName
		}
		visible := m.defaultVisible()
		if m.Visible != nil {
			visible = *m.Visible
		}
		refs = append(refs, provider.NewPlaceholder(provider.Provider(m.Provider), m.Constant,
			provider.WithTypeName(typeName), provider.WithVisible(visible)))
	}
	return provider.NewGroup(s.Key, label, refs...)
}

func (m memberSpec) defaultVisible() bool {
	return m.Type != "" && m.Type != provider.PendingTypeName
}
