// Package tenantctx carries the resolved tenant of a request through context.Context.
package tenantctx

import (
	"context"

	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
)

// Scope is the immutable tenant identity resolved for one request.
type Scope struct {
	TenantID  uuid.UUID
	Subdomain string
}

type scopeKey struct{}

// With returns a child context carrying s.
func With(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// From returns the scope stored in ctx, if any.
func From(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok || s.TenantID == uuid.Nil {
		return Scope{}, false
	}
	return s, true
}

// Require returns the scope or apperr.ErrTenantContextMissing.
func Require(ctx context.Context) (Scope, error) {
	s, ok := From(ctx)
	if !ok {
		return Scope{}, apperr.ErrTenantContextMissing
	}
	return s, nil
}
