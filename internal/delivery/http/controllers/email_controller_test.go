package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitmail/internal/delivery/http/helpers"
	"recruitmail/internal/delivery/http/middleware"
	"recruitmail/internal/domain"
)

// fakeEmailService implements domain.EmailService for handler tests.
type fakeEmailService struct {
	lastSend   domain.SendEmailInput
	sendResult *domain.EmailDelivery
	sendErr    error
	getResult  *domain.EmailDelivery
	getErr     error
	list       []*domain.EmailDelivery
	total      int
	listErr    error
	lastParams domain.PaginationParams
}

func (f *fakeEmailService) Send(ctx context.Context, in domain.SendEmailInput) (*domain.EmailDelivery, error) {
	f.lastSend = in
	return f.sendResult, f.sendErr
}

func (f *fakeEmailService) GetDelivery(ctx context.Context, id string) (*domain.EmailDelivery, error) {
	return f.getResult, f.getErr
}

func (f *fakeEmailService) ListDeliveries(ctx context.Context, params domain.PaginationParams) ([]*domain.EmailDelivery, int, error) {
	f.lastParams = params
	return f.list, f.total, f.listErr
}

func TestEmailController_SendEmail(t *testing.T) {
	sent := &domain.EmailDelivery{ID: "d-1", TemplateID: "jobOffer", Recipient: "a@b.com", Status: domain.DeliveryStatusSent, CreatedAt: time.Now()}

	tests := []struct {
		name         string
		body         string
		sendErr      error
		wantStatus   int
		wantCode     string
		wantMessage  string
		wantComplete bool
	}{
		{
			name:         "success requires complete by default",
			body:         `{"templateId":"jobOffer","to":"a@b.com","variables":{"position":"Dev"}}`,
			wantStatus:   http.StatusCreated,
			wantComplete: true,
		},
		{
			name:         "allow incomplete",
			body:         `{"templateId":"jobOffer","to":"a@b.com","allowIncomplete":true}`,
			wantStatus:   http.StatusCreated,
			wantComplete: false,
		},
		{
			name:       "missing fields",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:        "template not found",
			body:        `{"templateId":"nope","to":"a@b.com"}`,
			sendErr:     fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, "nope"),
			wantStatus:  http.StatusNotFound,
			wantCode:    helpers.ErrCodeNotFound,
			wantMessage: helpers.MsgTemplateNotFound,
		},
		{
			name:       "invalid recipient",
			body:       `{"templateId":"jobOffer","to":"nope"}`,
			sendErr:    fmt.Errorf("%w: invalid email format", domain.ErrInvalidRecipient),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:        "unresolved placeholders",
			body:        `{"templateId":"jobOffer","to":"a@b.com"}`,
			sendErr:     &domain.UnresolvedError{TemplateID: "jobOffer", Names: []string{"position", "salary"}},
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    helpers.ErrCodeUnprocessable,
			wantMessage: "missing variables: position, salary",
		},
		{
			name:        "mailer failure is generic",
			body:        `{"templateId":"jobOffer","to":"a@b.com"}`,
			sendErr:     fmt.Errorf("failed to send email: %w", assert.AnError),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    helpers.ErrCodeInternalError,
			wantMessage: helpers.MsgUnexpectedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEmailService{sendResult: sent, sendErr: tt.sendErr}
			ctrl := NewEmailController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/emails", strings.NewReader(tt.body))
			req = req.WithContext(middleware.SetSubject(req.Context(), "candidate-ui"))
			rr := httptest.NewRecorder()

			ctrl.SendEmail(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				env := decodeEnvelope(t, rr.Body, nil)
				assert.False(t, env.Success)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, env.Error.Message)
				}
				return
			}
			var got domain.EmailDelivery
			env := decodeEnvelope(t, rr.Body, &got)
			assert.True(t, env.Success)
			assert.Equal(t, "d-1", got.ID)
			assert.Equal(t, tt.wantComplete, fake.lastSend.RequireComplete)
		})
	}
}

func TestEmailController_ListDeliveries(t *testing.T) {
	fake := &fakeEmailService{
		list:  []*domain.EmailDelivery{{ID: "d-2"}, {ID: "d-1"}},
		total: 5,
	}
	ctrl := NewEmailController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "http://test/emails?page=2&page_size=2", nil)
	rr := httptest.NewRecorder()

	ctrl.ListDeliveries(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var page DeliveryPage
	env := decodeEnvelope(t, rr.Body, &page)
	assert.True(t, env.Success)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 2}, fake.lastParams)
	require.Len(t, page.Items, 2)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 2, Total: 5, TotalPages: 3}, page.Pagination)

	failing := NewEmailController(testLogger, &fakeEmailService{listErr: assert.AnError})
	rr = httptest.NewRecorder()
	failing.ListDeliveries(rr, httptest.NewRequest(http.MethodGet, "http://test/emails", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestEmailController_GetDelivery(t *testing.T) {
	tests := []struct {
		name       string
		result     *domain.EmailDelivery
		err        error
		wantStatus int
		wantCode   string
	}{
		{"found", &domain.EmailDelivery{ID: "d-1"}, nil, http.StatusOK, ""},
		{"not found", nil, domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"db error", nil, assert.AnError, http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEmailController(testLogger, &fakeEmailService{getResult: tt.result, getErr: tt.err})
			req := httptest.NewRequest(http.MethodGet, "http://test/emails/d-1", nil)
			req.SetPathValue("deliveryID", "d-1")
			rr := httptest.NewRecorder()

			ctrl.GetDelivery(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				env := decodeEnvelope(t, rr.Body, nil)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
		})
	}
}
