package helpers

import (
	"fmt"
	"time"

	"esummit/internal/domain"
)

// SerializeDocument prepares a stored document for output: the store identifier under
// "_id" is moved to "id" as a string, and timestamp values become RFC 3339 strings.
func SerializeDocument(doc domain.Document) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == domain.IDField {
			continue
		}
		out[k] = serializeValue(v)
	}
	if id, ok := doc[domain.IDField]; ok && id != nil {
		out["id"] = stringifyID(id)
	}
	return out
}

// SerializeDocuments serializes every document. The result is never nil.
func SerializeDocuments(docs []domain.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, SerializeDocument(d))
	}
	return out
}

func serializeValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}

// stringifyID renders a store identifier. MongoDB ObjectIDs expose Hex().
func stringifyID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
