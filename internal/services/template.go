package services

import (
	"context"
	"fmt"

	"recruitmail/internal/domain"
	"recruitmail/internal/templates"
)

// TemplateSource is the read-only view of the registry the services need.
type TemplateSource interface {
	Get(id string) (templates.Template, error)
	List() []domain.TemplateSummary
}

type templateService struct {
	source TemplateSource
}

// NewTemplateService returns a TemplateService backed by the given registry.
func NewTemplateService(source TemplateSource) domain.TemplateService {
	return &templateService{source: source}
}

func (s *templateService) List(ctx context.Context) ([]domain.TemplateSummary, error) {
	if s.source == nil {
		return nil, fmt.Errorf("template registry unavailable")
	}
	return s.source.List(), nil
}

func (s *templateService) Get(ctx context.Context, id string) (*domain.TemplateDetail, error) {
	t, err := s.source.Get(id)
	if err != nil {
		return nil, err
	}
	return &domain.TemplateDetail{
		ID:           t.ID,
		DisplayName:  templates.DisplayName(t.ID),
		Subject:      t.Subject,
		Body:         t.Body,
		Placeholders: nonNil(t.Placeholders()),
	}, nil
}

func (s *templateService) Preview(ctx context.Context, id string, variables map[string]string) (*domain.TemplatePreview, error) {
	t, err := s.source.Get(id)
	if err != nil {
		return nil, err
	}
	out := templates.Render(t, variables)
	return &domain.TemplatePreview{
		ID:           t.ID,
		DisplayName:  templates.DisplayName(t.ID),
		Subject:      out.Subject,
		Body:         out.Body,
		Placeholders: nonNil(t.Placeholders()),
		Unresolved:   nonNil(out.Unresolved),
	}, nil
}

// nonNil keeps JSON arrays as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
