// Package router assembles the HTTP routes and middleware chain.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dispatch-platform/internal/http/handlers"
	appmw "dispatch-platform/internal/http/middleware"
	"dispatch-platform/internal/logx"
)

const defaultRequestTimeout = 5 * time.Second

// Deps lists everything the router mounts. RateLimit may be nil.
type Deps struct {
	Logger  logx.Logger
	Base    *handlers.Handlers
	Tenants *handlers.TenantHandler
	Drivers *handlers.DriverHandler
	Shifts  *handlers.ShiftHandler
	Quotes  *handlers.QuoteHandler
	Orders  *handlers.OrderHandler

	RateLimit func(http.Handler) http.Handler
	Tenant    func(http.Handler) http.Handler
	Timeout   time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.Observability(d.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(d.Timeout))
		if d.RateLimit != nil {
			r.Use(d.RateLimit)
		}
		if d.Tenant != nil {
			r.Use(d.Tenant)
		}

		r.Post("/admin/tenants", d.Tenants.Create)
		r.Patch("/admin/tenants/{id}/active", d.Tenants.SetActive)
		r.Get("/settings", d.Tenants.Settings)
		r.Put("/settings", d.Tenants.UpdateSettings)

		r.Route("/drivers", func(r chi.Router) {
			r.Post("/", d.Drivers.Create)
			r.Get("/", d.Drivers.List)
			r.Get("/{id}", d.Drivers.Get)
			r.Patch("/{id}", d.Drivers.Update)
			r.Post("/{id}/disable", d.Drivers.Disable)
			r.Get("/{id}/orders", d.Drivers.Orders)
			r.Post("/{id}/shifts", d.Shifts.Start)
			r.Put("/{id}/location", d.Shifts.UpdateLocation)
		})

		r.Get("/shifts/active", d.Shifts.Active)
		r.Post("/shifts/{id}/stop", d.Shifts.Stop)

		r.Post("/quotes", d.Quotes.Quote)

		r.Post("/portal/orders", d.Orders.CreatePortal)
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", d.Orders.Create)
			r.Get("/", d.Orders.List)
			r.Get("/{id}", d.Orders.Get)
			r.Post("/{id}/approve", d.Orders.Approve)
			r.Get("/{id}/candidates", d.Orders.Candidates)
			r.Post("/{id}/assign", d.Orders.Assign)
			r.Post("/{id}/assign-nearest", d.Orders.AssignNearest)
			r.Post("/{id}/unassign", d.Orders.Unassign)
			r.Post("/{id}/status", d.Orders.SetStatus)
		})
	})

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}
