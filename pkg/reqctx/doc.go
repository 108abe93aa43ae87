// Package reqctx carries request-scoped metadata through context.Context.
//
// HTTP middleware attaches a RequestMeta to every request:
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    RequestedAt: time.Now(),
//	})
//
// Services read it back for log correlation:
//
//	slog.InfoContext(ctx, "patient added", reqctx.LogAttrs(ctx)...)
package reqctx
