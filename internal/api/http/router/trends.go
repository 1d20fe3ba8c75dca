package router

import (
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/handler"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerTrendsRoutes(
	api fiber.Router,
	h *handler.TrendsHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	trends := api.Group("/trends", authRequired)

	trends.Post("/import", requirePerm(authorize.ResourceRestaurantData, authorize.ActionExecute), h.Import)
	trends.Get("/locations/:storeNo", requirePerm(authorize.ResourceRestaurantData, authorize.ActionRead), h.GetLocation)
	trends.Get("/locations/:id/history", requirePerm(authorize.ResourceRestaurantData, authorize.ActionRead), h.ListTrends)
}
