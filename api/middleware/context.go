package middleware

import (
	"context"

	"github.com/andrebarceloschagas/sistema/pkg/visibility"
)

type contextKey string

const (
	ctxActor    contextKey = "actor"
	ctxAccessID contextKey = "access_id"
)

// WithActor injects the authenticated actor into the context.
func WithActor(ctx context.Context, actor visibility.Actor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxActor, actor)
}

// ActorFromContext returns the authenticated actor, or the zero Actor when
// the request carries no credentials.
func ActorFromContext(ctx context.Context) visibility.Actor {
	if ctx == nil {
		return visibility.Actor{}
	}
	if actor, ok := ctx.Value(ctxActor).(visibility.Actor); ok {
		return actor
	}
	return visibility.Actor{}
}

// WithAccessID injects the session identifier (the token's jti) into the context.
func WithAccessID(ctx context.Context, accessID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAccessID, accessID)
}

// AccessIDFromContext returns the session identifier carried by the request token.
func AccessIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAccessID).(string); ok {
		return v
	}
	return ""
}
