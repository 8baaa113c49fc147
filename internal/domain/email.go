package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Sentinel errors for email delivery.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidRecipient = errors.New("invalid recipient")
)

// Delivery statuses recorded in the delivery log.
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailDelivery is one send attempt recorded in the delivery log.
// swagger:model EmailDelivery
type EmailDelivery struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"templateId"`
	Recipient  string    `json:"recipient"`
	Subject    string    `json:"subject"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewEmailDelivery returns a delivery with the given fields. ID is set by the caller or repository.
func NewEmailDelivery(templateID, recipient, subject, status string, createdAt time.Time) *EmailDelivery {
	return &EmailDelivery{
		TemplateID: templateID,
		Recipient:  recipient,
		Subject:    subject,
		Status:     status,
		CreatedAt:  createdAt,
	}
}

// DeliveryRepository defines the interface for delivery log storage.
type DeliveryRepository interface {
	Create(ctx context.Context, d *EmailDelivery) error
	GetByID(ctx context.Context, id string) (*EmailDelivery, error)
	List(ctx context.Context, params PaginationParams) ([]*EmailDelivery, error)
	Count(ctx context.Context) (int, error)
}

// SendEmailInput is the input for rendering a template and sending it to one recipient.
type SendEmailInput struct {
	TemplateID      string
	To              string
	Variables       map[string]string
	RequireComplete bool
}

// UnresolvedError reports placeholders left unresolved when a complete render was required.
type UnresolvedError struct {
	TemplateID string
	Names      []string
}

func (e *UnresolvedError) Error() string {
	return "template " + e.TemplateID + " has unresolved placeholders: " + strings.Join(e.Names, ", ")
}

// Unwrap lets errors.Is match ErrUnresolvedPlaceholders.
func (e *UnresolvedError) Unwrap() error { return ErrUnresolvedPlaceholders }

// EmailService defines the contract for sending template emails and reading the delivery log.
type EmailService interface {
	Send(ctx context.Context, in SendEmailInput) (*EmailDelivery, error)
	GetDelivery(ctx context.Context, id string) (*EmailDelivery, error)
	ListDeliveries(ctx context.Context, params PaginationParams) ([]*EmailDelivery, int, error)
}

// EmailLayout wraps a rendered plain-text message into an HTML document.
type EmailLayout interface {
	HTML(subject, text string) (string, error)
}
