package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"dispatch-platform/internal/apperr"
	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/service/dispatch"
	"dispatch-platform/internal/tenantctx"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("http error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, ErrorResponse{Error: msg})
}

const bodyLimit = 1 << 20

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}

// decodeOptionalJSON accepts an empty body and leaves dst untouched.
func decodeOptionalJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return true
	}
	return decodeJSON(logger, w, r, dst)
}

var errInvalidID = errors.New("invalid id")

func idFromURL(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

// pathID parses a URL id and answers 400 when it is malformed.
func pathID(logger logx.Logger, w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := idFromURL(r, name)
	if err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string) (*int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, errors.New("invalid " + key)
	}
	return &v, nil
}

// scope returns the tenant resolved for the request or answers 400.
func scope(logger logx.Logger, w http.ResponseWriter, r *http.Request) (tenantctx.Scope, bool) {
	s, err := tenantctx.Require(r.Context())
	if err != nil {
		writeServiceError(logger, w, r, err)
		return tenantctx.Scope{}, false
	}
	return s, true
}

// platformOnly answers 403 when the request resolved to a tenant. Tenant
// administration is reserved for unscoped platform calls.
func platformOnly(logger logx.Logger, w http.ResponseWriter, r *http.Request) bool {
	s, ok := tenantctx.From(r.Context())
	if !ok {
		return true
	}
	logger.Warn("tenant-scoped admin call rejected",
		logx.String("req_id", reqID(r.Context())),
		logx.String("tenant_id", s.TenantID.String()),
		logx.String("path", r.URL.Path),
	)
	writeError(logger, w, r, http.StatusForbidden, "tenant administration is not available to tenants")
	return false
}

// writeServiceError maps the error taxonomy onto HTTP status codes.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrTenantContextMissing):
		writeError(logger, w, r, http.StatusBadRequest, "tenant context missing")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrTenantNotFound):
		writeError(logger, w, r, http.StatusNotFound, "tenant not found")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrAlreadyAssigned):
		writeError(logger, w, r, http.StatusConflict, "order already assigned")
	case errors.Is(err, apperr.ErrAlreadyActive):
		writeError(logger, w, r, http.StatusConflict, "driver already has an open shift")
	case errors.Is(err, apperr.ErrInvalidTransition):
		writeError(logger, w, r, http.StatusConflict, "transition not allowed")
	case errors.Is(err, dispatch.ErrNoCandidates):
		writeError(logger, w, r, http.StatusConflict, "no drivers on shift")
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, "conflict")
	case errors.Is(err, apperr.ErrRouteUnavailable):
		writeError(logger, w, r, http.StatusUnprocessableEntity, "route unavailable")
	default:
		logger.Error("request failed",
			logx.String("req_id", reqID(r.Context())),
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
