package handlers

import (
	"net/http"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// DriverHandler serves HTTP endpoints for driver resources.
type DriverHandler struct {
	drivers driverUsecase
	orders  orderUsecase
	logger  logx.Logger
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(logger logx.Logger, drivers driverUsecase, orders orderUsecase) *DriverHandler {
	return &DriverHandler{drivers: drivers, orders: orders, logger: logger}
}

// Create handles POST /drivers.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	var req createDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.drivers.Create(r.Context(), sc.TenantID, req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, driverToResponse(*d))
}

// List handles GET /drivers.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid offset")
		return
	}

	list, err := h.drivers.List(r.Context(), sc.TenantID, limit, offset)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driversToResponse(list))
}

// Get handles GET /drivers/{id}.
func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}

	d, err := h.drivers.Get(r.Context(), sc.TenantID, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
}

// Update handles PATCH /drivers/{id}.
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	var req updateDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.drivers.UpdatePartial(r.Context(), sc.TenantID, domain.PartialDriverUpdate{
		ID:         id,
		Name:       req.Name,
		Phone:      req.Phone,
		Employment: req.Employment,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
}

// Disable handles POST /drivers/{id}/disable.
func (h *DriverHandler) Disable(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}

	d, err := h.drivers.Disable(r.Context(), sc.TenantID, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
}

// Orders handles GET /drivers/{id}/orders.
func (h *DriverHandler) Orders(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	f, ok := orderFilter(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.orders.ListByDriver(r.Context(), sc.TenantID, id, f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}
