package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"dispatch-platform/internal/config"
	"dispatch-platform/internal/http/handlers"
	"dispatch-platform/internal/http/middleware"
	"dispatch-platform/internal/http/middleware/ratelimit"
	"dispatch-platform/internal/http/pprofserver"
	"dispatch-platform/internal/http/router"
	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/service/dispatch"
	"dispatch-platform/internal/service/driver"
	"dispatch-platform/internal/service/order"
	"dispatch-platform/internal/service/pricing"
	"dispatch-platform/internal/service/shift"
	"dispatch-platform/internal/service/tenant"
)

type pprofOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

func newPprofServer(cfg *config.Config, logger logx.Logger) pprofOut {
	return pprofOut{Server: pprofserver.New(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	}, logger)}
}

type rateLimitIn struct {
	dig.In
	Config  *config.Config
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
}

// newRateLimit keys buckets by tenant selector and client IP. It sits in
// front of tenant resolution, so unknown selectors are throttled as well.
func newRateLimit(in rateLimitIn) *ratelimit.Middleware {
	var limiter ratelimit.Limiter = ratelimit.NopLimiter{}
	if rl := in.Config.RateLimit; rl.Enabled {
		limiter = ratelimit.NewTokenBucketLimiter(ratelimit.RealClock{}, ratelimit.Config{
			Rate:       rl.Rate,
			Burst:      rl.Burst,
			TTL:        rl.TTL,
			MaxBuckets: rl.MaxBuckets,
		})
	}
	return ratelimit.New(in.Logger, in.Counter, limiter).
		WithKey(ratelimit.TenantIPKey(in.Config.Tenant.Header))
}

type routerIn struct {
	dig.In
	Config    *config.Config
	Logger    logx.Logger
	Base      *handlers.Handlers
	Tenants   *handlers.TenantHandler
	Drivers   *handlers.DriverHandler
	Shifts    *handlers.ShiftHandler
	Quotes    *handlers.QuoteHandler
	Orders    *handlers.OrderHandler
	RateLimit *ratelimit.Middleware
	Resolver  *tenant.Service
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:    in.Logger,
		Base:      in.Base,
		Tenants:   in.Tenants,
		Drivers:   in.Drivers,
		Shifts:    in.Shifts,
		Quotes:    in.Quotes,
		Orders:    in.Orders,
		RateLimit: in.RateLimit.Handler(),
		Tenant:    middleware.Tenant(in.Config.Tenant.Header, in.Resolver, in.Logger),
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(logger logx.Logger, uc *tenant.Service) *handlers.TenantHandler {
			return handlers.NewTenantHandler(logger, uc)
		},
		func(logger logx.Logger, drivers *driver.Service, orders *order.Manager) *handlers.DriverHandler {
			return handlers.NewDriverHandler(logger, drivers, orders)
		},
		func(logger logx.Logger, uc *shift.Tracker) *handlers.ShiftHandler {
			return handlers.NewShiftHandler(logger, uc)
		},
		func(logger logx.Logger, uc *pricing.Engine) *handlers.QuoteHandler {
			return handlers.NewQuoteHandler(logger, uc)
		},
		func(logger logx.Logger, orders *order.Manager, d *dispatch.Orchestrator) *handlers.OrderHandler {
			return handlers.NewOrderHandler(logger, orders, d)
		},
		newRateLimit,
		newRouter,
		serverProvider,
		newPprofServer,
	)
}
