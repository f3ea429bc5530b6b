package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the private key type for request-scoped values.
type ContextKey string

const (
	// PrincipalEmailContextKey carries the authenticated user's email,
	// set by the auth middleware after token validation.
	PrincipalEmailContextKey ContextKey = "principalEmail"

	// TraceIDKey carries the per-request trace ID.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID attaches a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the trace ID, or "" when the context has none.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithPrincipalEmail returns a context carrying the authenticated email.
func WithPrincipalEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, PrincipalEmailContextKey, email)
}

// PrincipalEmail retrieves the authenticated email from the context.
// Returns the email and a boolean indicating whether it was present.
func PrincipalEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(PrincipalEmailContextKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// generateTraceID returns a 32-character hex string. If crypto/rand fails
// it falls back to a time-derived value rather than a static one, so IDs
// stay distinct enough for log correlation.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate random trace ID",
			"error", err,
			"bytes_read", n)
		return generateFallbackTraceID()
	}
	return hex.EncodeToString(b)
}

func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)

	now := time.Now().UnixNano()
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now))
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(time.Now().Nanosecond()))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(time.Now().Unix()))

	return hex.EncodeToString(fallbackID)
}
