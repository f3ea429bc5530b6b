package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskboard-io/taskboard/internal/api/shared"
)

// TraceMiddleware assigns each request a trace ID and puts it in the
// context. Error responses echo the ID so a client report can be matched
// to server logs. Runs before authentication so rejected requests are
// traceable too.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		slog.Debug("request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
