package handlers

import (
	"net/http"

	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/service/tenant"
)

// TenantHandler serves tenant administration and per-tenant settings.
type TenantHandler struct {
	usecase tenantUsecase
	logger  logx.Logger
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(logger logx.Logger, uc tenantUsecase) *TenantHandler {
	return &TenantHandler{usecase: uc, logger: logger}
}

// Create handles POST /admin/tenants.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !platformOnly(h.logger, w, r) {
		return
	}
	var req createTenantRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	in := tenant.NewTenant{Subdomain: req.Subdomain, Name: req.Name}
	if req.Pricing != nil {
		p := req.Pricing.toModel()
		in.Pricing = &p
	}
	if req.Locale != nil {
		l := req.Locale.toModel()
		in.Locale = &l
	}

	t, err := h.usecase.Create(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, tenantToResponse(t))
}

// SetActive handles PATCH /admin/tenants/{id}/active.
func (h *TenantHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	if !platformOnly(h.logger, w, r) {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	var req setActiveRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Active == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "active is required")
		return
	}

	t, err := h.usecase.SetActive(r.Context(), id, *req.Active)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, tenantToResponse(t))
}

// Settings handles GET /settings.
func (h *TenantHandler) Settings(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	t, err := h.usecase.Settings(r.Context(), sc.TenantID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, settingsToResponse(t))
}

// UpdateSettings handles PUT /settings. Both pricing and locale are replaced.
func (h *TenantHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	var req updateSettingsRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Pricing == nil || req.Locale == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "pricing and locale are required")
		return
	}

	t, err := h.usecase.UpdateSettings(r.Context(), sc.TenantID, req.Pricing.toModel(), req.Locale.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, settingsToResponse(t))
}
