package controllers

import (
	"net/http"

	"esummit/internal/delivery/http/helpers"
	"esummit/internal/domain"
)

// RootMessage is returned by GET /.
const RootMessage = "RSCOE E-Club E-Summit Backend Running"

// SystemController serves the liveness message and the database diagnostics report.
type SystemController struct {
	Diagnostics domain.DiagnosticsService
}

func NewSystemController(diag domain.DiagnosticsService) *SystemController {
	return &SystemController{Diagnostics: diag}
}

// Root godoc
// @Summary Liveness message
// @Tags system
// @Produce json
// @Success 200 {object} helpers.MessageResponse
// @Router / [get]
func (c *SystemController) Root(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: RootMessage})
}

// Test godoc
// @Summary Database diagnostics
// @Description Reports the configured backend, database name, connection status and up to ten collection names.
// @Description Always answers 200; failures are described in connection_status.
// @Tags system
// @Produce json
// @Success 200 {object} domain.Diagnostics
// @Router /test [get]
func (c *SystemController) Test(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.Diagnostics.Diagnose(r.Context()))
}
