// Package template loads YAML checklist templates used to seed audit items.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"hsse/internal/audit/models"
	dErrors "hsse/pkg/domain-errors"
)

// Template is a named checklist for one audit type.
type Template struct {
	Name        string           `yaml:"name"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Type        models.AuditType `yaml:"type"`
	Items       []ItemSpec       `yaml:"items"`
}

// ItemSpec is one checklist question. Sort order follows file order unless set.
type ItemSpec struct {
	Description string          `yaml:"description"`
	Type        models.ItemType `yaml:"type"`
	Required    bool            `yaml:"required"`
	Category    string          `yaml:"category"`
	Expected    string          `yaml:"expected"`
	MaxPoints   *int            `yaml:"max_points"`
	SortOrder   int             `yaml:"sort_order"`
}

// Parse decodes a single template document. Unknown keys are rejected.
func Parse(data []byte) (*Template, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var t Template
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dErrors.New(dErrors.CodeValidation, "template is empty")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid template yaml")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// Validate checks the template against the item rules the engine enforces.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "template name is required")
	}
	if !t.Type.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "template %s: invalid audit type %q", t.Name, t.Type)
	}
	if len(t.Items) == 0 {
		return dErrors.Newf(dErrors.CodeValidation, "template %s: at least one item is required", t.Name)
	}
	seen := make(map[int]bool, len(t.Items))
	for i, in := range t.ItemInputs() {
		if err := in.Validate(); err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("template %s: item %d", t.Name, i+1))
		}
		if seen[in.SortOrder] {
			return dErrors.Newf(dErrors.CodeValidation, "template %s: duplicate sort order %d", t.Name, in.SortOrder)
		}
		seen[in.SortOrder] = true
	}
	return nil
}

// ItemInputs converts the checklist into engine item inputs.
func (t *Template) ItemInputs() []models.ItemInput {
	out := make([]models.ItemInput, len(t.Items))
	for i, spec := range t.Items {
		order := spec.SortOrder
		if order == 0 {
			order = i + 1
		}
		out[i] = models.ItemInput{
			Description:    spec.Description,
			Type:           spec.Type,
			Required:       spec.Required,
			SortOrder:      order,
			Category:       spec.Category,
			ExpectedResult: spec.Expected,
			MaxPoints:      spec.MaxPoints,
		}
	}
	return out
}

// Registry holds templates keyed by name.
type Registry struct {
	templates map[string]*Template
}

func NewRegistry(templates ...*Template) *Registry {
	r := &Registry{templates: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		r.templates[t.Name] = t
	}
	return r
}

// LoadDir loads every *.yaml and *.yml file in dir. Duplicate names fail.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}
	r := NewRegistry()
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		t, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := r.templates[t.Name]; dup {
			return nil, dErrors.Newf(dErrors.CodeValidation, "duplicate template name %q", t.Name)
		}
		r.templates[t.Name] = t
	}
	return r, nil
}

func (r *Registry) Get(name string) (*Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
