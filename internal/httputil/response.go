package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes data as JSON. The body is encoded before any header is
// written, so an encoding failure still yields a clean 500.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// ProblemDetail is an RFC 7807 problem document. Extra members are written
// at the top level next to the standard ones.
type ProblemDetail struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status"`
	Detail   string                 `json:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty"`
	Extra    map[string]interface{} `json:"-"`
}

// MarshalJSON flattens Extra into the document. Extra cannot shadow the
// standard members.
func (p ProblemDetail) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(p.Extra)+5)
	for k, v := range p.Extra {
		m[k] = v
	}

	m["type"] = p.Type
	m["title"] = p.Title
	m["status"] = p.Status
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}

	return json.Marshal(m)
}

// RespondError writes an RFC 7807 Problem Details error response
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondErrorWithExtras(w, status, detail, nil)
}

// RespondErrorWithExtras writes an RFC 7807 error with additional fields,
// such as the request ID
func RespondErrorWithExtras(w http.ResponseWriter, status int, detail string, extras map[string]interface{}) {
	problem := ProblemDetail{
		Type:   errorTypeFromStatus(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Extra:  extras,
	}

	payload, err := json.Marshal(problem)
	if err != nil {
		// Extras that cannot be encoded are dropped
		problem.Extra = nil
		payload, _ = json.Marshal(problem)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// problemTypes maps statuses to their RFC 9110 sections
var problemTypes = map[int]string{
	http.StatusBadRequest:            "#name-400-bad-request",
	http.StatusNotFound:              "#name-404-not-found",
	http.StatusConflict:              "#name-409-conflict",
	http.StatusRequestEntityTooLarge: "#name-413-content-too-large",
	http.StatusInternalServerError:   "#name-500-internal-server-error",
	http.StatusServiceUnavailable:    "#name-503-service-unavailable",
	http.StatusGatewayTimeout:        "#name-504-gateway-timeout",
}

const rfc9110 = "https://www.rfc-editor.org/rfc/rfc9110.html"

// errorTypeFromStatus returns the problem type URI for a status code
func errorTypeFromStatus(status int) string {
	if anchor, ok := problemTypes[status]; ok {
		return rfc9110 + anchor
	}
	return "about:blank"
}
