package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeySubject is the context key for the authenticated admin subject
	ContextKeySubject contextKey = "subject"
	// ContextKeyClaims is the context key for the validated token claims
	ContextKeyClaims contextKey = "claims"
)

// WithClaims adds validated token claims and their subject to the context
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	sub, _ := claims.GetSubject()
	ctx = context.WithValue(ctx, ContextKeySubject, sub)
	return context.WithValue(ctx, ContextKeyClaims, claims)
}

// SubjectFromContext retrieves the authenticated subject from the context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeySubject).(string)
	return sub, ok
}
