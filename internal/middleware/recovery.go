package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"vedaimport/internal/httputil"
)

// Recovery turns a panic in a handler into a 500 problem response carrying
// the request ID. http.ErrAbortHandler is re-raised so net/http can drop the
// connection as intended.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				httputil.Logger(r, logger).Error("handler panicked",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				var extras map[string]interface{}
				if id := httputil.GetRequestID(r); id != "" {
					extras = map[string]interface{}{"request_id": id}
				}
				httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "internal server error", extras)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
