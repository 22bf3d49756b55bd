// Package catalog converts the in-memory list of requested service names to
// and from the single text column it is persisted in. The stored format
// evolved over time: old rows hold plain text, newer rows hold a JSON array.
// Decode keeps both readable without a migration, so every read path goes
// through it and no caller ever sees a decoding error.
package catalog

import (
	"database/sql"
	"encoding/json"
	"log"
	"strings"
)

// Encode serializes a list of service names as a JSON array. A nil or empty
// list encodes to "[]" so the column is never NULL for new rows.
func Encode(services []string) string {
	if len(services) == 0 {
		return "[]"
	}
	b, err := json.Marshal(services)
	if err != nil {
		// Marshalling a []string cannot fail in practice; fall back to an
		// empty array rather than persisting garbage.
		log.Printf("catalog: encode failed: %v", err)
		return "[]"
	}
	return string(b)
}

// Decode parses a stored services column back into a list of names. It is a
// defensive boundary against historical data and never returns an error:
//
//   - NULL or empty text decodes to an empty list
//   - a JSON array of strings decodes normally
//   - a JSON array with non-string elements is logged and dropped
//   - anything else (legacy plain text) is wrapped as a one-element list
func Decode(raw sql.NullString) []string {
	if !raw.Valid {
		return []string{}
	}
	text := strings.TrimSpace(raw.String)
	if text == "" {
		return []string{}
	}
	if !strings.HasPrefix(text, "[") {
		// Legacy rows stored the service as plain text.
		log.Printf("catalog: non-JSON services value %q, wrapping as single entry", text)
		return []string{raw.String}
	}
	var services []string
	if err := json.Unmarshal([]byte(text), &services); err != nil {
		log.Printf("catalog: unparseable services value %q: %v", text, err)
		return []string{}
	}
	if services == nil {
		return []string{}
	}
	return services
}
