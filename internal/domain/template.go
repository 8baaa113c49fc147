package domain

import (
	"context"
	"errors"
)

// Sentinel errors for template operations.
var (
	ErrTemplateNotFound       = errors.New("template not found")
	ErrUnresolvedPlaceholders = errors.New("unresolved placeholders")
)

// TemplateSummary is the catalog entry for a template.
// swagger:model TemplateSummary
type TemplateSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Subject     string `json:"subject"`
}

// TemplateDetail is the raw, unrendered template with its placeholder names.
// swagger:model TemplateDetail
type TemplateDetail struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"displayName"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	Placeholders []string `json:"placeholders"`
}

// TemplatePreview is a template rendered with caller-supplied variables.
// Unresolved lists placeholders for which no variable was supplied; they are
// left in Subject and Body as literal {name} markers.
// swagger:model TemplatePreview
type TemplatePreview struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"displayName"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	Placeholders []string `json:"placeholders"`
	Unresolved   []string `json:"unresolved"`
}

// TemplateService exposes the template catalog and rendering.
type TemplateService interface {
	List(ctx context.Context) ([]TemplateSummary, error)
	Get(ctx context.Context, id string) (*TemplateDetail, error)
	Preview(ctx context.Context, id string, variables map[string]string) (*TemplatePreview, error)
}
