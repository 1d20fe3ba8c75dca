package router

import (
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/handler"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)
	users.Get("/me", h.GetMe)
	users.Patch("/me", h.UpdateMe)

	// Staff management is admin-only.
	users.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.Create)
	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	users.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.Get)
	users.Patch("/:id", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Update)
	users.Delete("/:id", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Suspend)
}
