package app

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"dispatch-platform/internal/cache"
	"dispatch-platform/internal/config"
	"dispatch-platform/internal/gateway/geo"
	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/repository"
	"dispatch-platform/internal/service/dispatch"
	"dispatch-platform/internal/service/driver"
	"dispatch-platform/internal/service/matching"
	"dispatch-platform/internal/service/order"
	"dispatch-platform/internal/service/pricing"
	"dispatch-platform/internal/service/shift"
	"dispatch-platform/internal/service/tenant"
	"dispatch-platform/internal/service/tracking"
	"dispatch-platform/internal/transport/kafka"
)

// redisCloser releases the tenant cache connection.
type redisCloser func() error

// eventsCloser flushes and closes the order event producer.
type eventsCloser func() error

var newEventPublisher = kafka.NewPublisher

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewTenantRepo,
		repository.NewDriverRepo,
		repository.NewShiftRepo,
		repository.NewOrderRepo,
		newTenantCache,
		newGeoGateway,
		newOrderEvents,
		func(repo *repository.TenantRepo, c cache.TenantCache, logger logx.Logger, timeout time.Duration) *tenant.Service {
			return tenant.NewService(repo, c, logger, timeout)
		},
		func(repo *repository.DriverRepo, logger logx.Logger, timeout time.Duration) *driver.Service {
			return driver.NewService(repo, logger, timeout)
		},
		newShiftTracker,
		newMatcher,
		newPricingEngine,
		newOrderManager,
		func(orders *order.Manager, matcher *matching.Matcher, logger logx.Logger) *dispatch.Orchestrator {
			return dispatch.NewOrchestrator(orders, matcher, logger)
		},
	)
}

func registerTracking(container *dig.Container) error {
	return provideAll(container,
		repository.NewShiftRepo,
		newShiftTracker,
		func(tracker *shift.Tracker, logger logx.Logger) *tracking.Processor {
			return tracking.NewProcessor(tracker, logger)
		},
		newLocationConsumer,
	)
}

func newShiftTracker(repo *repository.ShiftRepo, logger logx.Logger, timeout time.Duration) *shift.Tracker {
	return shift.NewTracker(repo, logger, timeout)
}

func newTenantCache(cfg *config.Config, logger logx.Logger) (cache.TenantCache, redisCloser) {
	if cfg.Redis.Addr == "" {
		logger.Info("tenant cache disabled")
		return cache.Nop{}, func() error { return nil }
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	logger.Info("tenant cache enabled", logx.String("addr", cfg.Redis.Addr), logx.Duration("ttl", cfg.Redis.TenantTTL))
	c := cache.NewRedisTenantCache(client, cfg.Redis.TenantTTL).
		WithInvalidationHold(2 * cfg.OperationTimeout)
	return c, client.Close
}

type geoIn struct {
	dig.In
	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func newGeoGateway(in geoIn) *geo.RetryingGateway {
	g := in.Config.Geo
	client := geo.NewClient(g.BaseURL, g.APIKey, g.Timeout)
	return geo.NewRetryingGateway(client, in.Logger, in.Retries, geo.RetryConfig{
		MaxAttempts: g.MaxAttempts,
		BaseDelay:   g.BaseDelay,
		MaxDelay:    g.MaxDelay,
	})
}

type matcherIn struct {
	dig.In
	Shifts    *shift.Tracker
	Geo       *geo.RetryingGateway
	Fallbacks prometheus.Counter `name:"matcher_geocode_fallback_total"`
	Logger    logx.Logger
	Timeout   time.Duration
}

func newMatcher(in matcherIn) *matching.Matcher {
	return matching.NewMatcher(in.Shifts, in.Geo, in.Fallbacks, in.Logger, in.Timeout)
}

type pricingIn struct {
	dig.In
	Tenants  *repository.TenantRepo
	Geo      *geo.RetryingGateway
	Failures prometheus.Counter `name:"quote_failures_total"`
	Logger   logx.Logger
	Timeout  time.Duration
}

func newPricingEngine(in pricingIn) *pricing.Engine {
	return pricing.NewEngine(in.Tenants, in.Geo, in.Failures, in.Logger, in.Timeout)
}

func newOrderEvents(cfg *config.Config, logger logx.Logger) (order.Publisher, eventsCloser, error) {
	p, err := newEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrderEvents)
	if err != nil {
		return nil, nil, fmt.Errorf("order events: %w", err)
	}
	if p == nil {
		logger.Info("order events disabled: kafka not configured")
		return order.NopPublisher{}, func() error { return nil }, nil
	}
	logger.Info("order events enabled", logx.String("topic", cfg.Kafka.OrderEvents))
	return p, p.Close, nil
}

type orderManagerIn struct {
	dig.In
	Repo            *repository.OrderRepo
	Drivers         *driver.Service
	Quotes          *pricing.Engine
	Events          order.Publisher
	AssignConflicts prometheus.Counter `name:"dispatch_assign_conflicts_total"`
	PublishFailures prometheus.Counter `name:"order_events_publish_failures_total"`
	Logger          logx.Logger
	Timeout         time.Duration
}

func newOrderManager(in orderManagerIn) *order.Manager {
	return order.NewManager(in.Repo, in.Drivers, in.Quotes, in.Events, order.Counters{
		AssignConflicts:      in.AssignConflicts,
		EventPublishFailures: in.PublishFailures,
	}, in.Logger, in.Timeout)
}

func newLocationConsumer(cfg *config.Config, logger logx.Logger, p *tracking.Processor) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.Group, cfg.Kafka.DriverLocation, p.Handle)
}
