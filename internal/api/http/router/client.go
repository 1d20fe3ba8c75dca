package router

import (
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/handler"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerClientRoutes(
	api fiber.Router,
	h *handler.ClientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	clients := api.Group("/clients", authRequired)

	clients.Post("/", requirePerm(authorize.ResourceClient, authorize.ActionCreate), h.Create)
	clients.Get("/", requirePerm(authorize.ResourceClient, authorize.ActionList), h.List)
	clients.Get("/:id", requirePerm(authorize.ResourceClient, authorize.ActionRead), h.Get)
	clients.Patch("/:id", requirePerm(authorize.ResourceClient, authorize.ActionUpdate), h.Update)
	clients.Delete("/:id", requirePerm(authorize.ResourceClient, authorize.ActionDelete), h.Delete)
}
