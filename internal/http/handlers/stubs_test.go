package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dispatch-platform/internal/domain"
	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/service/pricing"
	"dispatch-platform/internal/service/tenant"
	"dispatch-platform/internal/tenantctx"
)

var testTenant = tenantctx.Scope{
	TenantID:  uuid.MustParse("8f0c6c1e-8a0e-4f43-9d0a-1f1d1b4d6a01"),
	Subdomain: "acme",
}

type reqOpt func(*http.Request) *http.Request

func withScope(s tenantctx.Scope) reqOpt {
	return func(r *http.Request) *http.Request {
		return r.WithContext(tenantctx.With(r.Context(), s))
	}
}

func withParam(key, value string) reqOpt {
	return func(r *http.Request) *http.Request {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			rctx = chi.NewRouteContext()
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		}
		rctx.URLParams.Add(key, value)
		return r
	}
}

func newRequest(t *testing.T, method, target, body string, opts ...reqOpt) *http.Request {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		req = o(req)
	}
	return req
}

func nopLogger() logx.Logger { return logx.Nop() }

type stubTenantUsecase struct {
	createFn         func(ctx context.Context, in tenant.NewTenant) (*domain.Tenant, error)
	setActiveFn      func(ctx context.Context, id uuid.UUID, active bool) (*domain.Tenant, error)
	settingsFn       func(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error)
	updateSettingsFn func(ctx context.Context, tenantID uuid.UUID, p domain.Pricing, l domain.Locale) (*domain.Tenant, error)
}

func (s *stubTenantUsecase) Create(ctx context.Context, in tenant.NewTenant) (*domain.Tenant, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, in)
}

func (s *stubTenantUsecase) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Tenant, error) {
	if s.setActiveFn == nil {
		panic("SetActive not expected in this test")
	}
	return s.setActiveFn(ctx, id, active)
}

func (s *stubTenantUsecase) Settings(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error) {
	if s.settingsFn == nil {
		panic("Settings not expected in this test")
	}
	return s.settingsFn(ctx, tenantID)
}

func (s *stubTenantUsecase) UpdateSettings(ctx context.Context, tenantID uuid.UUID, p domain.Pricing, l domain.Locale) (*domain.Tenant, error) {
	if s.updateSettingsFn == nil {
		panic("UpdateSettings not expected in this test")
	}
	return s.updateSettingsFn(ctx, tenantID, p, l)
}

type stubDriverUsecase struct {
	getFn     func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error)
	listFn    func(ctx context.Context, tenantID uuid.UUID, limit, offset *int) ([]domain.Driver, error)
	createFn  func(ctx context.Context, tenantID uuid.UUID, d *domain.Driver) (*domain.Driver, error)
	updateFn  func(ctx context.Context, tenantID uuid.UUID, u domain.PartialDriverUpdate) (*domain.Driver, error)
	disableFn func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error)
}

func (s *stubDriverUsecase) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, tenantID, id)
}

func (s *stubDriverUsecase) List(ctx context.Context, tenantID uuid.UUID, limit, offset *int) ([]domain.Driver, error) {
	if s.listFn == nil {
		panic("List not expected in this test")
	}
	return s.listFn(ctx, tenantID, limit, offset)
}

func (s *stubDriverUsecase) Create(ctx context.Context, tenantID uuid.UUID, d *domain.Driver) (*domain.Driver, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, tenantID, d)
}

func (s *stubDriverUsecase) UpdatePartial(ctx context.Context, tenantID uuid.UUID, u domain.PartialDriverUpdate) (*domain.Driver, error) {
	if s.updateFn == nil {
		panic("UpdatePartial not expected in this test")
	}
	return s.updateFn(ctx, tenantID, u)
}

func (s *stubDriverUsecase) Disable(ctx context.Context, tenantID, id uuid.UUID) (*domain.Driver, error) {
	if s.disableFn == nil {
		panic("Disable not expected in this test")
	}
	return s.disableFn(ctx, tenantID, id)
}

type stubShiftUsecase struct {
	startFn    func(ctx context.Context, tenantID, driverID uuid.UUID, loc *domain.Point) (*domain.Shift, error)
	stopFn     func(ctx context.Context, tenantID, shiftID uuid.UUID, loc *domain.Point) (*domain.Shift, error)
	activeFn   func(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error)
	locationFn func(ctx context.Context, ping domain.LocationPing) error
}

func (s *stubShiftUsecase) Start(ctx context.Context, tenantID, driverID uuid.UUID, loc *domain.Point) (*domain.Shift, error) {
	if s.startFn == nil {
		panic("Start not expected in this test")
	}
	return s.startFn(ctx, tenantID, driverID, loc)
}

func (s *stubShiftUsecase) Stop(ctx context.Context, tenantID, shiftID uuid.UUID, loc *domain.Point) (*domain.Shift, error) {
	if s.stopFn == nil {
		panic("Stop not expected in this test")
	}
	return s.stopFn(ctx, tenantID, shiftID, loc)
}

func (s *stubShiftUsecase) Active(ctx context.Context, tenantID uuid.UUID) ([]domain.ActiveShift, error) {
	if s.activeFn == nil {
		panic("Active not expected in this test")
	}
	return s.activeFn(ctx, tenantID)
}

func (s *stubShiftUsecase) UpdateLocation(ctx context.Context, ping domain.LocationPing) error {
	if s.locationFn == nil {
		panic("UpdateLocation not expected in this test")
	}
	return s.locationFn(ctx, ping)
}

type stubQuoteUsecase struct {
	quoteFn func(ctx context.Context, tenantID uuid.UUID, req pricing.Request) (domain.Quote, error)
}

func (s *stubQuoteUsecase) Quote(ctx context.Context, tenantID uuid.UUID, req pricing.Request) (domain.Quote, error) {
	if s.quoteFn == nil {
		panic("Quote not expected in this test")
	}
	return s.quoteFn(ctx, tenantID, req)
}

type stubOrderUsecase struct {
	createFn       func(ctx context.Context, tenantID uuid.UUID, in domain.NewOrder) (*domain.Order, error)
	getFn          func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	listFn         func(ctx context.Context, tenantID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error)
	listByDriverFn func(ctx context.Context, tenantID, driverID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error)
	unassignFn     func(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error)
	setStatusFn    func(ctx context.Context, tenantID, id uuid.UUID, c domain.StatusChange) (*domain.Order, error)
}

func (s *stubOrderUsecase) Create(ctx context.Context, tenantID uuid.UUID, in domain.NewOrder) (*domain.Order, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, tenantID, in)
}

func (s *stubOrderUsecase) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, tenantID, id)
}

func (s *stubOrderUsecase) List(ctx context.Context, tenantID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error) {
	if s.listFn == nil {
		panic("List not expected in this test")
	}
	return s.listFn(ctx, tenantID, f)
}

func (s *stubOrderUsecase) ListByDriver(ctx context.Context, tenantID, driverID uuid.UUID, f domain.OrderFilter) ([]domain.Order, error) {
	if s.listByDriverFn == nil {
		panic("ListByDriver not expected in this test")
	}
	return s.listByDriverFn(ctx, tenantID, driverID, f)
}

func (s *stubOrderUsecase) Unassign(ctx context.Context, tenantID, id uuid.UUID) (*domain.Order, error) {
	if s.unassignFn == nil {
		panic("Unassign not expected in this test")
	}
	return s.unassignFn(ctx, tenantID, id)
}

func (s *stubOrderUsecase) SetStatus(ctx context.Context, tenantID, id uuid.UUID, c domain.StatusChange) (*domain.Order, error) {
	if s.setStatusFn == nil {
		panic("SetStatus not expected in this test")
	}
	return s.setStatusFn(ctx, tenantID, id, c)
}

type stubDispatchUsecase struct {
	approveFn       func(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error)
	candidatesFn    func(ctx context.Context, tenantID, orderID uuid.UUID) ([]domain.Candidate, error)
	assignFn        func(ctx context.Context, tenantID, orderID, driverID uuid.UUID) (*domain.Order, error)
	assignNearestFn func(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error)
}

func (s *stubDispatchUsecase) Approve(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error) {
	if s.approveFn == nil {
		panic("Approve not expected in this test")
	}
	return s.approveFn(ctx, tenantID, orderID)
}

func (s *stubDispatchUsecase) Candidates(ctx context.Context, tenantID, orderID uuid.UUID) ([]domain.Candidate, error) {
	if s.candidatesFn == nil {
		panic("Candidates not expected in this test")
	}
	return s.candidatesFn(ctx, tenantID, orderID)
}

func (s *stubDispatchUsecase) Assign(ctx context.Context, tenantID, orderID, driverID uuid.UUID) (*domain.Order, error) {
	if s.assignFn == nil {
		panic("Assign not expected in this test")
	}
	return s.assignFn(ctx, tenantID, orderID, driverID)
}

func (s *stubDispatchUsecase) AssignNearest(ctx context.Context, tenantID, orderID uuid.UUID) (*domain.Order, error) {
	if s.assignNearestFn == nil {
		panic("AssignNearest not expected in this test")
	}
	return s.assignNearestFn(ctx, tenantID, orderID)
}
