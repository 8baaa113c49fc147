// Package templates holds the compiled-in email template registry and the
// placeholder substitution engine.
package templates

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"recruitmail/internal/domain"
)

//go:embed templates.yaml
var defaultData []byte

// Template is one registered email template. Subject and Body contain {name}
// placeholders.
type Template struct {
	ID      string `yaml:"id"`
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

// Placeholders returns the distinct placeholder names used in the subject
// and then the body, in first-occurrence order.
func (t Template) Placeholders() []string {
	return Placeholders(t.Subject + "\n" + t.Body)
}

// Registry is the fixed set of templates, addressable by id. It is built once
// and never mutated, so it is safe for concurrent use.
type Registry struct {
	ordered []Template
	byID    map[string]int
}

// NewRegistry builds a registry from templates in the given order.
// It rejects empty ids, empty subjects or bodies, and duplicate ids.
func NewRegistry(list []Template) (*Registry, error) {
	r := &Registry{
		ordered: make([]Template, 0, len(list)),
		byID:    make(map[string]int, len(list)),
	}
	for i, t := range list {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			return nil, fmt.Errorf("template at index %d: empty id", i)
		}
		if strings.TrimSpace(t.Subject) == "" {
			return nil, fmt.Errorf("template %q: empty subject", t.ID)
		}
		if strings.TrimSpace(t.Body) == "" {
			return nil, fmt.Errorf("template %q: empty body", t.ID)
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", t.ID)
		}
		r.byID[t.ID] = len(r.ordered)
		r.ordered = append(r.ordered, t)
	}
	return r, nil
}

// Parse decodes a YAML sequence of templates and builds a registry from it.
func Parse(data []byte) (*Registry, error) {
	var list []Template
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	return NewRegistry(list)
}

// Default returns the registry built from the embedded template data.
// Each call builds a fresh value; callers construct it once at startup.
func Default() (*Registry, error) {
	return Parse(defaultData)
}

// Get returns the template with the given id, or an error wrapping
// domain.ErrTemplateNotFound.
func (r *Registry) Get(id string) (Template, error) {
	i, ok := r.byID[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, id)
	}
	return r.ordered[i], nil
}

// List returns one summary per template in registration order.
func (r *Registry) List() []domain.TemplateSummary {
	out := make([]domain.TemplateSummary, len(r.ordered))
	for i, t := range r.ordered {
		out[i] = domain.TemplateSummary{
			ID:          t.ID,
			DisplayName: DisplayName(t.ID),
			Subject:     t.Subject,
		}
	}
	return out
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ordered))
	for i, t := range r.ordered {
		out[i] = t.ID
	}
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.ordered) }
