package router

import (
	"github.com/oculusgrp/dealdesk_backend/config"
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/handler"
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/middleware"
	"github.com/oculusgrp/dealdesk_backend/internal/service/auth"
	"github.com/oculusgrp/dealdesk_backend/internal/service/broker"
	"github.com/oculusgrp/dealdesk_backend/internal/service/client"
	"github.com/oculusgrp/dealdesk_backend/internal/service/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/service/notification"
	"github.com/oculusgrp/dealdesk_backend/internal/service/payment"
	"github.com/oculusgrp/dealdesk_backend/internal/service/trends"
	"github.com/oculusgrp/dealdesk_backend/internal/service/user"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	pasetotoken "github.com/oculusgrp/dealdesk_backend/pkg/paseto"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	UserSvc         user.Service
	AuthSvc         auth.Service
	ClientSvc       client.Service
	BrokerSvc       broker.Service
	DealSvc         deal.Service
	PaymentSvc      payment.Service
	TrendsSvc       trends.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	clientH := handler.NewClientHandler(r.p.ClientSvc)
	brokerH := handler.NewBrokerHandler(r.p.BrokerSvc)
	dealH := handler.NewDealHandler(r.p.DealSvc)
	paymentH := handler.NewPaymentHandler(r.p.PaymentSvc)
	trendsH := handler.NewTrendsHandler(r.p.TrendsSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerClientRoutes(api, clientH, authRequired, requirePerm)
	r.registerBrokerRoutes(api, brokerH, authRequired, requirePerm)
	r.registerDealRoutes(api, dealH, paymentH, authRequired, requirePerm)
	r.registerPaymentRoutes(api, paymentH, authRequired, requirePerm)
	r.registerTrendsRoutes(api, trendsH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
