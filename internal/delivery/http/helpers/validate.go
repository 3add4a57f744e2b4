package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"esummit/internal/domain"
)

// MaxBodyBytes limits the size of request bodies.
const MaxBodyBytes = 1 << 20

// Validator is implemented by records that support validation.
// Validate returns nil or a *domain.ValidationError.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by records with default values for unset fields.
type Defaulter interface {
	ApplyDefaults()
}

// DecodeAndValidate decodes the request body into dest, applies defaults and, if dest
// implements Validator, runs Validate(). Unknown fields are ignored.
// The body must hold exactly one JSON object; anything else is a 400. Each field is decoded
// on its own, so type mismatches and validation failures are reported together in one 422.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	raw, ok := readObject(w, r)
	if !ok {
		return false
	}
	fields := decodeFields(raw, dest)
	if d, ok := dest.(Defaulter); ok {
		d.ApplyDefaults()
	}
	if v, ok := dest.(Validator); ok {
		if err := v.Validate(); err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
				return false
			}
			fields = mergeFieldErrors(dest, fields, verr.Fields)
		}
	}
	if len(fields) > 0 {
		WriteValidationError(w, &domain.ValidationError{Fields: fields})
		return false
	}
	return true
}

// readObject reads the body as a single JSON object keyed by field name.
func readObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "request body too large")
			return nil, false
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "request body is required")
		case errors.As(err, &typeErr):
			WriteValidationError(w, domain.NewValidationError("body", "expected a JSON object, got "+typeErr.Value))
		default:
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		}
		return nil, false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "request body must contain a single JSON object")
		return nil, false
	}
	if raw == nil {
		WriteValidationError(w, domain.NewValidationError("body", "expected a JSON object, got null"))
		return nil, false
	}
	return raw, true
}

type jsonField struct {
	name  string
	index int
}

// jsonFields lists the exported fields of struct type t under their JSON names.
func jsonFields(t reflect.Type) []jsonField {
	out := make([]jsonField, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out = append(out, jsonField{name: name, index: i})
	}
	return out
}

// decodeFields decodes every known key of raw into the matching field of dest
// and returns one FieldError per key that could not be decoded.
func decodeFields(raw map[string]json.RawMessage, dest any) []domain.FieldError {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		data, err := json.Marshal(raw)
		if err == nil {
			err = json.Unmarshal(data, dest)
		}
		if err != nil {
			return []domain.FieldError{decodeFieldError("body", err)}
		}
		return nil
	}
	v = v.Elem()

	var out []domain.FieldError
	for _, f := range jsonFields(v.Type()) {
		data, ok := raw[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, v.Field(f.index).Addr().Interface()); err != nil {
			out = append(out, decodeFieldError(f.name, err))
		}
	}
	return out
}

func decodeFieldError(name string, err error) domain.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			name += "." + typeErr.Field
		}
		return domain.FieldError{Field: name, Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
	}
	return domain.FieldError{Field: name, Message: err.Error()}
}

// mergeFieldErrors adds the validation failures of fields that decoded cleanly
// and orders the result by the field order of dest.
func mergeFieldErrors(dest any, decoded, validated []domain.FieldError) []domain.FieldError {
	failed := make(map[string]bool, len(decoded))
	for _, f := range decoded {
		failed[rootField(f.Field)] = true
	}
	out := decoded
	for _, f := range validated {
		if !failed[rootField(f.Field)] {
			out = append(out, f)
		}
	}

	order := map[string]int{}
	if t := reflect.TypeOf(dest); t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct {
		for i, f := range jsonFields(t.Elem()) {
			order[f.name] = i
		}
	}
	position := func(f domain.FieldError) int {
		if i, ok := order[rootField(f.Field)]; ok {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(out, func(a, b domain.FieldError) int {
		return position(a) - position(b)
	})
	return out
}

func rootField(field string) string {
	name, _, _ := strings.Cut(field, ".")
	return name
}
