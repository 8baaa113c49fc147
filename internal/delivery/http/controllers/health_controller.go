package controllers

import (
	"net/http"

	"recruitmail/internal/delivery/http/helpers"
)

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Templates int    `json:"templates"`
}

// HealthController reports liveness.
type HealthController struct {
	templateCount func() int
}

// NewHealthController creates a HealthController reporting the given template count.
func NewHealthController(templateCount func() int) *HealthController {
	return &HealthController{templateCount: templateCount}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains status and template count"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Templates: c.templateCount()})
}
