package handler

import (
	"context"
	"errors"
	"net/http"

	"vedaimport/internal/domain"
	"vedaimport/internal/httputil"
)

// handleError converts domain errors to problem responses. Typed domain
// errors carry their own status; wrapped sentinels are matched next.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr domain.HTTPError
	extras := map[string]interface{}{}
	if id := httputil.GetRequestID(r); id != "" {
		extras["request_id"] = id
	}

	switch {
	case errors.As(err, &httpErr):
		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) && conflictErr.ResourceType != "" {
			extras["resource_type"] = conflictErr.ResourceType
		}
		httputil.RespondErrorWithExtras(w, httpErr.StatusCode(), httpErr.Error(), extras)
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, err.Error(), extras)
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondErrorWithExtras(w, http.StatusNotFound, err.Error(), extras)
	case errors.Is(err, domain.ErrUnavailable):
		httputil.RespondErrorWithExtras(w, http.StatusServiceUnavailable, err.Error(), extras)
	case errors.Is(err, context.DeadlineExceeded):
		httputil.RespondErrorWithExtras(w, http.StatusGatewayTimeout, "import timed out", extras)
	default:
		httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "internal server error", extras)
	}
}
