package domain

import "context"

// Speaker is a summit speaker, stored in the "speaker" collection.
// swagger:model Speaker
type Speaker struct {
	Name     *string           `json:"name" bson:"name" validate:"required"`
	Title    *string           `json:"title" bson:"title"`
	Company  *string           `json:"company" bson:"company"`
	Bio      *string           `json:"bio" bson:"bio"`
	PhotoURL *string           `json:"photo_url" bson:"photo_url"`
	Socials  map[string]string `json:"socials" bson:"socials"`
}

// ApplyDefaults fills unset optional fields.
func (s *Speaker) ApplyDefaults() {
	if s.Socials == nil {
		s.Socials = map[string]string{}
	}
}

// Validate implements Validator.
func (s *Speaker) Validate() error {
	return validateStruct(s)
}

// SpeakerService creates and lists speakers.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, speaker *Speaker) (string, error)
	ListSpeakers(ctx context.Context) ([]Document, error)
}
