package controllers

import (
	"log/slog"
	"net/http"

	"esummit/internal/delivery/http/helpers"
	"esummit/internal/domain"
)

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSpeaker godoc
// @Summary Add a speaker
// @Description Store a speaker profile. Only name is required; socials is a free-form map of platform to URL.
// @Tags speakers
// @Accept json
// @Produce json
// @Param speaker body domain.Speaker true "Speaker profile"
// @Success 200 {object} helpers.CreatedResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 422 {object} helpers.ErrorResponse "error.code: validation_error"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/speakers [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req domain.Speaker
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateSpeaker(r.Context(), &req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.CreatedResponse{ID: id})
}

// ListSpeakers godoc
// @Summary List speakers
// @Tags speakers
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	docs, err := c.Service.ListSpeakers(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SerializeDocuments(docs))
}
