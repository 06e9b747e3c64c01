package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
)

// OrderHandler serves order lifecycle and dispatch endpoints.
type OrderHandler struct {
	orders   orderUsecase
	dispatch dispatchUsecase
	logger   logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, orders orderUsecase, dispatch dispatchUsecase) *OrderHandler {
	return &OrderHandler{orders: orders, dispatch: dispatch, logger: logger}
}

// Create handles POST /orders (tenant back office).
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.SourceDirect)
}

// CreatePortal handles POST /portal/orders. Portal orders wait for approval.
func (h *OrderHandler) CreatePortal(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.SourceCustomerPortal)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request, source domain.OrderSource) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.orders.Create(r.Context(), sc.TenantID, req.toModel(source))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, orderToResponse(*o))
}

// List handles GET /orders?status=&limit=&offset=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	f, ok := orderFilter(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.orders.List(r.Context(), sc.TenantID, f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, http.StatusOK, func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
		return h.orders.Get(ctx, tenantID, id)
	})
}

// Approve handles POST /orders/{id}/approve.
func (h *OrderHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, http.StatusOK, func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
		return h.dispatch.Approve(ctx, tenantID, id)
	})
}

// AssignNearest handles POST /orders/{id}/assign-nearest.
func (h *OrderHandler) AssignNearest(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, http.StatusOK, func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
		return h.dispatch.AssignNearest(ctx, tenantID, id)
	})
}

// Unassign handles POST /orders/{id}/unassign.
func (h *OrderHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, http.StatusOK, func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
		return h.orders.Unassign(ctx, tenantID, id)
	})
}

// orderByID runs only after scope and id are resolved.
type orderByID func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)

func (h *OrderHandler) byID(w http.ResponseWriter, r *http.Request, status int, call orderByID) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}

	o, err := call(r.Context(), sc.TenantID, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, status, orderToResponse(*o))
}

// Candidates handles GET /orders/{id}/candidates.
func (h *OrderHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}

	list, err := h.dispatch.Candidates(r.Context(), sc.TenantID, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, candidatesToResponse(list))
}

// Assign handles POST /orders/{id}/assign.
func (h *OrderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.dispatch.Assign(r.Context(), sc.TenantID, id, req.DriverID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

// SetStatus handles POST /orders/{id}/status.
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	id, ok := pathID(h.logger, w, r, "id")
	if !ok {
		return
	}
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.orders.SetStatus(r.Context(), sc.TenantID, id, domain.StatusChange{
		Status: req.Status,
		Proof:  req.Proof.toModel(),
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

func orderFilter(logger logx.Logger, w http.ResponseWriter, r *http.Request) (domain.OrderFilter, bool) {
	var f domain.OrderFilter
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.OrderStatus(s)
		if !st.Valid() {
			writeError(logger, w, r, http.StatusBadRequest, "invalid status")
			return f, false
		}
		f.Status = &st
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid limit")
		return f, false
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid offset")
		return f, false
	}
	if limit != nil {
		f.Limit = *limit
	}
	if offset != nil {
		f.Offset = *offset
	}
	return f, true
}
