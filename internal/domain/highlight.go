package domain

import "context"

// Highlight summarises a past summit edition, stored in the "highlight" collection.
// swagger:model Highlight
type Highlight struct {
	Year     *int           `json:"year" bson:"year" validate:"required"`
	Headline *string        `json:"headline" bson:"headline" validate:"required"`
	Stats    map[string]any `json:"stats" bson:"stats"`
	Gallery  []string       `json:"gallery" bson:"gallery"`
}

// ApplyDefaults fills unset optional fields.
func (h *Highlight) ApplyDefaults() {
	if h.Stats == nil {
		h.Stats = map[string]any{}
	}
	if h.Gallery == nil {
		h.Gallery = []string{}
	}
}

// Validate implements Validator.
func (h *Highlight) Validate() error {
	return validateStruct(h)
}

// HighlightService creates and lists highlights.
type HighlightService interface {
	CreateHighlight(ctx context.Context, highlight *Highlight) (string, error)
	ListHighlights(ctx context.Context) ([]Document, error)
}
