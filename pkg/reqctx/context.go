package reqctx

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey int

const keyRequestMeta ctxKey = iota

// RequestMeta holds per-request metadata set by HTTP middleware.
type RequestMeta struct {
	// RequestID is taken from X-Request-Id or generated as a UUID v4.
	RequestID   string
	ClientIP    string
	UserAgent   string
	RequestedAt time.Time
}

func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext returns nil, false if no metadata is attached.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(keyRequestMeta).(*RequestMeta)
	return meta, ok && meta != nil
}

// RequestIDFromContext returns "" when no metadata is attached.
func RequestIDFromContext(ctx context.Context) string {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return ""
	}
	return meta.RequestID
}

// LogAttrs returns slog attributes identifying the request, if any.
func LogAttrs(ctx context.Context) []any {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return nil
	}
	return []any{
		slog.String("request_id", meta.RequestID),
		slog.String("client_ip", meta.ClientIP),
	}
}
