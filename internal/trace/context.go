package trace

import "context"

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// WithRequestID returns a copy of ctx carrying id, retrievable via
// [RequestIDFrom]. A later call shadows an earlier one on the same context
// chain; an empty id is distinguishable from "not set" by RequestIDFrom's
// second return value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom reports the request ID carried by ctx, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
