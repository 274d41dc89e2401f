package gateway

import "context"

type tokenKey struct{}

// WithToken attaches the caller's bearer token to ctx so gateway calls made
// on their behalf are authenticated. The token is issued and validated by
// the backend; this service only forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the forwarded bearer token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
