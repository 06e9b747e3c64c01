package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/tenantctx"
)

type tenantResolver interface {
	Resolve(ctx context.Context, selector string) (tenantctx.Scope, error)
}

// Tenant resolves the selector header into a request scope. Requests without
// the header pass through unscoped; handlers that need a tenant reject them.
func Tenant(header string, resolver tenantResolver, logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			selector := r.Header.Get(header)
			if selector == "" {
				next.ServeHTTP(w, r)
				return
			}

			sc, err := resolver.Resolve(r.Context(), selector)
			if err != nil {
				status, body := http.StatusInternalServerError, `{"error":"internal error"}`
				if errors.Is(err, apperr.ErrTenantNotFound) {
					status, body = http.StatusNotFound, `{"error":"tenant not found"}`
				} else {
					logger.Error("tenant resolve failed",
						logx.String("req_id", chimw.GetReqID(r.Context())),
						logx.String("selector", selector),
						logx.Err(err),
					)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = io.WriteString(w, body+"\n")
				return
			}
			next.ServeHTTP(w, r.WithContext(tenantctx.With(r.Context(), sc)))
		})
	}
}
