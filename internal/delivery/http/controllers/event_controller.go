package controllers

import (
	"log/slog"
	"net/http"

	"esummit/internal/delivery/http/helpers"
	"esummit/internal/domain"
)

// EventController serves the event listing used by the schedule page.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Store a summit event. date accepts ISO 8601 with or without a UTC offset; naive values are read as UTC.
// @Description speaker_ids defaults to an empty list and duplicate tags are dropped.
// @Tags events
// @Accept json
// @Produce json
// @Param event body domain.Event true "Event"
// @Success 200 {object} helpers.CreatedResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 422 {object} helpers.ErrorResponse "error.code: validation_error"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req domain.Event
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateEvent(r.Context(), &req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.CreatedResponse{ID: id})
}

// ListEvents godoc
// @Summary List events
// @Description Every stored event with its id. date is returned as an ISO 8601 string.
// @Tags events
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	docs, err := c.Service.ListEvents(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SerializeDocuments(docs))
}
