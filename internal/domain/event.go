package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Event is a summit event, stored in the "event" collection.
// SpeakerIDs are advisory references to speaker documents and are not checked.
// swagger:model Event
type Event struct {
	Name        *string    `json:"name" bson:"name" validate:"required"`
	Description *string    `json:"description" bson:"description"`
	Date        *EventDate `json:"date" bson:"date" validate:"required"`
	Location    *string    `json:"location" bson:"location" validate:"required"`
	SpeakerIDs  []string   `json:"speaker_ids" bson:"speaker_ids"`
	Price       float64    `json:"price" bson:"price" validate:"gte=0"`
	Capacity    *int       `json:"capacity" bson:"capacity" validate:"omitempty,gte=0"`
	Tags        []string   `json:"tags" bson:"tags"`
}

// ErrInvalidEventDate is returned when a date matches none of the accepted layouts.
var ErrInvalidEventDate = errors.New("invalid datetime format")

// eventDateLayouts are tried in order; layouts without a zone are read as UTC.
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseEventDate parses an event date in any accepted layout.
func ParseEventDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range eventDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// EventDate is the moment an event starts. It reads RFC 3339 or naive
// date/datetime strings from JSON and is stored as a BSON datetime.
type EventDate time.Time

// NewEventDate wraps t.
func NewEventDate(t time.Time) *EventDate {
	d := EventDate(t)
	return &d
}

// Time returns the date as a time.Time.
func (d EventDate) Time() time.Time {
	return time.Time(d)
}

func (d EventDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.RFC3339Nano))
}

func (d *EventDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidEventDate
	}
	t, err := ParseEventDate(s)
	if err != nil {
		return ErrInvalidEventDate
	}
	*d = EventDate(t)
	return nil
}

func (d EventDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(d))
}

func (d *EventDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var tm time.Time
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&tm); err != nil {
		return err
	}
	*d = EventDate(tm.UTC())
	return nil
}

// ApplyDefaults fills unset optional fields and drops duplicate tags.
func (e *Event) ApplyDefaults() {
	if e.SpeakerIDs == nil {
		e.SpeakerIDs = []string{}
	}
	e.Tags = uniqueStrings(e.Tags)
}

// Validate implements Validator.
func (e *Event) Validate() error {
	return validateStruct(e)
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// EventService creates and lists events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (string, error)
	ListEvents(ctx context.Context) ([]Document, error)
}
