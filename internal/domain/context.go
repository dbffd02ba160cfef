package domain

import "context"

type sessionIDKey struct{}

// ContextWithSessionID tags ctx with the id of the running session so
// storage writes made on its behalf can be attributed to it.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session id stored by ContextWithSessionID,
// or "" when there is none.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
