package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruitmail/internal/domain"
	"recruitmail/internal/templates"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type emailService struct {
	source     TemplateSource
	mailer     domain.Mailer
	layout     domain.EmailLayout
	deliveries domain.DeliveryRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewEmailService returns an EmailService that renders registry templates, sends them
// with the given Mailer, and records every attempt in the delivery repository.
func NewEmailService(source TemplateSource, mailer domain.Mailer, layout domain.EmailLayout, deliveries domain.DeliveryRepository, logger *slog.Logger) domain.EmailService {
	return &emailService{
		source:     source,
		mailer:     mailer,
		layout:     layout,
		deliveries: deliveries,
		logger:     logger,
		now:        time.Now,
	}
}

// Send renders the template and sends it to one recipient. A failed mailer call is
// still recorded; the returned delivery then has status "failed" alongside the error.
func (s *emailService) Send(ctx context.Context, in domain.SendEmailInput) (*domain.EmailDelivery, error) {
	to, err := normalizeRecipient(in.To)
	if err != nil {
		return nil, err
	}
	t, err := s.source.Get(in.TemplateID)
	if err != nil {
		return nil, err
	}
	out := templates.Render(t, in.Variables)
	if in.RequireComplete && !out.Complete() {
		return nil, &domain.UnresolvedError{TemplateID: t.ID, Names: out.Unresolved}
	}
	var htmlBody string
	if s.layout != nil {
		htmlBody, err = s.layout.HTML(out.Subject, out.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to render html body: %w", err)
		}
	}

	delivery := domain.NewEmailDelivery(t.ID, to, out.Subject, domain.DeliveryStatusSent, s.now().UTC())
	delivery.ID = uuid.NewString()
	sendErr := s.mailer.Send(ctx, to, out.Subject, htmlBody, out.Body)
	if sendErr != nil {
		delivery.Status = domain.DeliveryStatusFailed
		delivery.Error = sendErr.Error()
	}
	if err := s.deliveries.Create(ctx, delivery); err != nil {
		if sendErr != nil {
			return delivery, errors.Join(fmt.Errorf("failed to send email: %w", sendErr), fmt.Errorf("failed to record delivery: %w", err))
		}
		return delivery, fmt.Errorf("failed to record delivery: %w", err)
	}
	if sendErr != nil {
		return delivery, fmt.Errorf("failed to send email: %w", sendErr)
	}
	s.logger.InfoContext(ctx, "email sent", "template", t.ID, "delivery_id", delivery.ID)
	return delivery, nil
}

func (s *emailService) GetDelivery(ctx context.Context, id string) (*domain.EmailDelivery, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	return s.deliveries.GetByID(ctx, id)
}

func (s *emailService) ListDeliveries(ctx context.Context, params domain.PaginationParams) ([]*domain.EmailDelivery, int, error) {
	total, err := s.deliveries.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count deliveries: %w", err)
	}
	list, err := s.deliveries.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deliveries: %w", err)
	}
	if list == nil {
		list = []*domain.EmailDelivery{}
	}
	return list, total, nil
}

// normalizeRecipient accepts a bare address only; display names are rejected.
func normalizeRecipient(to string) (string, error) {
	to = strings.TrimSpace(strings.ToLower(to))
	if to == "" {
		return "", fmt.Errorf("%w: recipient is required", domain.ErrInvalidRecipient)
	}
	if !emailRegexp.MatchString(to) {
		return "", fmt.Errorf("%w: invalid email format", domain.ErrInvalidRecipient)
	}
	return to, nil
}
