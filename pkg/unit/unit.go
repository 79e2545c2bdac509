package unit

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// New returns a fresh unit identifier.
func New() string {
	return uuid.NewString()
}

// NewContext returns a copy of ctx that carries the unit identifier id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the unit identifier stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)

	return id, ok
}
