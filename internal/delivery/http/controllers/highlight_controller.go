package controllers

import (
	"log/slog"
	"net/http"

	"esummit/internal/delivery/http/helpers"
	"esummit/internal/domain"
)

type HighlightController struct {
	Logger  *slog.Logger
	Service domain.HighlightService
}

func NewHighlightController(logger *slog.Logger, svc domain.HighlightService) *HighlightController {
	return &HighlightController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateHighlight godoc
// @Summary Add a past-edition highlight
// @Tags highlights
// @Accept json
// @Produce json
// @Param highlight body domain.Highlight true "Highlight"
// @Success 200 {object} helpers.CreatedResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 422 {object} helpers.ErrorResponse "error.code: validation_error"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/highlights [post]
func (c *HighlightController) CreateHighlight(w http.ResponseWriter, r *http.Request) {
	var req domain.Highlight
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateHighlight(r.Context(), &req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.CreatedResponse{ID: id})
}

// ListHighlights godoc
// @Summary List highlights
// @Tags highlights
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/highlights [get]
func (c *HighlightController) ListHighlights(w http.ResponseWriter, r *http.Request) {
	docs, err := c.Service.ListHighlights(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SerializeDocuments(docs))
}
