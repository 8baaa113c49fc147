package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"recruitmail/internal/delivery/http/helpers"
	"recruitmail/internal/domain"
)

// PreviewRequest is the request body for POST /templates/{templateID}/preview.
type PreviewRequest struct {
	Variables map[string]string `json:"variables"`
}

// Validate implements Validator.
func (p PreviewRequest) Validate() []string {
	var errs []string
	for name := range p.Variables {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "variable names must not be empty")
			break
		}
	}
	return errs
}

// ListTemplatesSuccessResponse is the success response envelope for GET /templates (200).
type ListTemplatesSuccessResponse struct {
	Success bool                     `json:"success"`
	Data    []domain.TemplateSummary `json:"data"`
	Error   *helpers.APIError        `json:"error"`
}

// GetTemplateSuccessResponse is the success response envelope for GET /templates/{templateID} (200).
type GetTemplateSuccessResponse struct {
	Success bool                   `json:"success"`
	Data    *domain.TemplateDetail `json:"data"`
	Error   *helpers.APIError      `json:"error"`
}

// PreviewSuccessResponse is the success response envelope for template previews (200).
type PreviewSuccessResponse struct {
	Success bool                    `json:"success"`
	Data    *domain.TemplatePreview `json:"data"`
	Error   *helpers.APIError       `json:"error"`
}

// TemplateController handles the template catalog and preview endpoints.
type TemplateController struct {
	Logger  *slog.Logger
	Service domain.TemplateService
}

// NewTemplateController creates a TemplateController with the given logger and service.
func NewTemplateController(logger *slog.Logger, svc domain.TemplateService) *TemplateController {
	return &TemplateController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTemplates godoc
// @Summary List email templates
// @Description Returns every registered template as id, display name and raw subject, in catalog order.
// @Tags templates
// @Produce json
// @Success 200 {object} controllers.ListTemplatesSuccessResponse "data contains the catalog"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /templates [get]
func (c *TemplateController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// GetTemplate godoc
// @Summary Get an email template
// @Description Returns the raw subject and body of a template with its placeholder names.
// @Tags templates
// @Produce json
// @Param templateID path string true "Template ID" example(applicationReceived)
// @Success 200 {object} controllers.GetTemplateSuccessResponse "data contains the template"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /templates/{templateID} [get]
func (c *TemplateController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	detail, err := c.Service.Get(r.Context(), r.PathValue("templateID"))
	if err != nil {
		c.templateError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// PreviewTemplateQuery godoc
// @Summary Preview an email template
// @Description Renders the template using query parameters as variables (e.g. ?candidateName=John%20Doe). Placeholders without a value are left as {name} and listed in unresolved.
// @Tags templates
// @Produce json
// @Param templateID path string true "Template ID" example(applicationReceived)
// @Success 200 {object} controllers.PreviewSuccessResponse "data contains the rendered subject and body"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /templates/{templateID}/preview [get]
func (c *TemplateController) PreviewTemplateQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vars := make(map[string]string, len(query))
	for name, values := range query {
		if len(values) > 0 {
			vars[name] = values[0]
		}
	}
	c.preview(w, r, vars)
}

// PreviewTemplate godoc
// @Summary Preview an email template
// @Description Renders the template with the variables in the request body. Placeholders without a value are left as {name} and listed in unresolved.
// @Tags templates
// @Accept json
// @Produce json
// @Param templateID path string true "Template ID" example(applicationReceived)
// @Param body body PreviewRequest true "Variables keyed by placeholder name"
// @Success 200 {object} controllers.PreviewSuccessResponse "data contains the rendered subject and body"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /templates/{templateID}/preview [post]
func (c *TemplateController) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.preview(w, r, req.Variables)
}

func (c *TemplateController) preview(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	preview, err := c.Service.Preview(r.Context(), r.PathValue("templateID"), vars)
	if err != nil {
		c.templateError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, preview)
}

func (c *TemplateController) templateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrTemplateNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, helpers.MsgTemplateNotFound)
		return
	}
	c.internalError(w, r, err)
}

func (c *TemplateController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, helpers.MsgUnexpectedError)
}
