package handlers

import (
	"net/http"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// ShiftHandler serves shift and driver location endpoints.
type ShiftHandler struct {
	usecase shiftUsecase
	logger  logx.Logger
}

// NewShiftHandler creates a new ShiftHandler.
func NewShiftHandler(logger logx.Logger, uc shiftUsecase) *ShiftHandler {
	return &ShiftHandler{usecase: uc, logger: logger}
}

// Start handles POST /drivers/{id}/shifts. The body with a start location is optional.
func (h *ShiftHandler) Start(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	driverID, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	var req shiftRequest
	if ok := decodeOptionalJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.usecase.Start(r.Context(), sc.TenantID, driverID, req.Location.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, shiftToResponse(s))
}

// Stop handles POST /shifts/{id}/stop.
func (h *ShiftHandler) Stop(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	shiftID, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	var req shiftRequest
	if ok := decodeOptionalJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.usecase.Stop(r.Context(), sc.TenantID, shiftID, req.Location.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, shiftToResponse(s))
}

// Active handles GET /shifts/active.
func (h *ShiftHandler) Active(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	list, err := h.usecase.Active(r.Context(), sc.TenantID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, activeShiftsToResponse(list))
}

// UpdateLocation handles PUT /drivers/{id}/location.
func (h *ShiftHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	driverID, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	var req locationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Lat == nil || req.Lon == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "lat and lon are required")
		return
	}

	ping := domain.LocationPing{
		TenantID: sc.TenantID,
		DriverID: driverID,
		Point:    domain.Point{Lat: *req.Lat, Lon: *req.Lon},
	}
	if req.At != nil {
		ping.At = req.At.UTC()
	}
	if err := h.usecase.UpdateLocation(r.Context(), ping); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
