package router

import (
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/handler"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerBrokerRoutes(
	api fiber.Router,
	h *handler.BrokerHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	brokers := api.Group("/brokers", authRequired)

	brokers.Post("/", requirePerm(authorize.ResourceBroker, authorize.ActionCreate), h.Create)
	brokers.Get("/", requirePerm(authorize.ResourceBroker, authorize.ActionList), h.List)
	brokers.Get("/:id", requirePerm(authorize.ResourceBroker, authorize.ActionRead), h.Get)
	brokers.Patch("/:id", requirePerm(authorize.ResourceBroker, authorize.ActionUpdate), h.Update)
	brokers.Delete("/:id", requirePerm(authorize.ResourceBroker, authorize.ActionDelete), h.Deactivate)

	// Decrypted account numbers need a full manage grant, not just read.
	brokers.Get("/:id/bank-account", requirePerm(authorize.ResourceBroker, authorize.ActionManage), h.BankAccount)
}
