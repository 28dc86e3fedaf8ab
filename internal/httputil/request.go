package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// MaxJSONBodyBytes limits JSON request bodies. Pasted documents and
// persisted books are the largest payloads.
const MaxJSONBodyBytes = 32 << 20

// ParseJSON decodes JSON from the request body into dest. The body size is
// limited and unknown fields are rejected.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
