package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"recruitmail/internal/delivery/http/helpers"
	"recruitmail/internal/delivery/http/middleware"
	"recruitmail/internal/domain"
)

// SendEmailRequest is the request body for POST /emails.
type SendEmailRequest struct {
	TemplateID string            `json:"templateId"`
	To         string            `json:"to"`
	Variables  map[string]string `json:"variables"`
	// AllowIncomplete sends even when placeholders remain unresolved.
	AllowIncomplete bool `json:"allowIncomplete"`
}

// Validate implements Validator.
func (s SendEmailRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.TemplateID) == "" {
		errs = append(errs, "templateId is required")
	}
	if strings.TrimSpace(s.To) == "" {
		errs = append(errs, "to is required")
	}
	return errs
}

// SendEmailSuccessResponse is the success response envelope for POST /emails (201).
type SendEmailSuccessResponse struct {
	Success bool                  `json:"success"`
	Data    *domain.EmailDelivery `json:"data"`
	Error   *helpers.APIError     `json:"error"`
}

// DeliveryPage is the paginated list payload for GET /emails.
type DeliveryPage = helpers.Page[*domain.EmailDelivery]

// ListDeliveriesSuccessResponse is the success response envelope for GET /emails (200).
type ListDeliveriesSuccessResponse struct {
	Success bool              `json:"success"`
	Data    DeliveryPage      `json:"data"`
	Error   *helpers.APIError `json:"error"`
}

// EmailController handles sending template emails and reading the delivery log.
type EmailController struct {
	Logger  *slog.Logger
	Service domain.EmailService
}

// NewEmailController creates an EmailController with the given logger and service.
func NewEmailController(logger *slog.Logger, svc domain.EmailService) *EmailController {
	return &EmailController{
		Logger:  logger,
		Service: svc,
	}
}

// SendEmail godoc
// @Summary Send a template email
// @Description Renders the template with the given variables and sends it to one recipient. Unless allowIncomplete is set, a render with unresolved placeholders is rejected. Requires Bearer token.
// @Tags emails
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendEmailRequest true "Template, recipient and variables"
// @Success 201 {object} controllers.SendEmailSuccessResponse "data contains the delivery record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emails [post]
func (c *EmailController) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req SendEmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	subject, _ := middleware.SubjectFromContext(r.Context())
	delivery, err := c.Service.Send(r.Context(), domain.SendEmailInput{
		TemplateID:      strings.TrimSpace(req.TemplateID),
		To:              req.To,
		Variables:       req.Variables,
		RequireComplete: !req.AllowIncomplete,
	})
	if err != nil {
		var unresolved *domain.UnresolvedError
		switch {
		case errors.Is(err, domain.ErrTemplateNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, helpers.MsgTemplateNotFound)
		case errors.Is(err, domain.ErrInvalidRecipient):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid recipient email")
		case errors.As(err, &unresolved):
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable,
				"missing variables: "+strings.Join(unresolved.Names, ", "))
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "caller", subject, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgUnexpectedError)
		}
		return
	}
	c.Logger.InfoContext(r.Context(), "template email sent", "template", delivery.TemplateID, "delivery_id", delivery.ID, "caller", subject)
	helpers.WriteJSONSuccess(w, http.StatusCreated, delivery)
}

// ListDeliveries godoc
// @Summary List email deliveries
// @Description Returns the delivery log, newest first. Requires Bearer token.
// @Tags emails
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListDeliveriesSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emails [get]
func (c *EmailController) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListDeliveries(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgUnexpectedError)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeliveryPage{
		Items:      list,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}

// GetDelivery godoc
// @Summary Get an email delivery
// @Description Returns one delivery record. Requires Bearer token.
// @Tags emails
// @Produce json
// @Security BearerAuth
// @Param deliveryID path string true "Delivery ID"
// @Success 200 {object} controllers.SendEmailSuccessResponse "data contains the delivery record"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emails/{deliveryID} [get]
func (c *EmailController) GetDelivery(w http.ResponseWriter, r *http.Request) {
	delivery, err := c.Service.GetDelivery(r.Context(), r.PathValue("deliveryID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, helpers.MsgDeliveryNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgUnexpectedError)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, delivery)
}
