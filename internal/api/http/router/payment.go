package router

import (
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/handler"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerPaymentRoutes(
	api fiber.Router,
	ph *handler.PaymentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	payments := api.Group("/payments", authRequired)

	payments.Get("/:id", requirePerm(authorize.ResourcePayment, authorize.ActionRead), ph.Get)
	payments.Get("/:id/splits", requirePerm(authorize.ResourcePaymentSplit, authorize.ActionList), ph.ListSplits)
	payments.Patch("/:id", requirePerm(authorize.ResourcePayment, authorize.ActionUpdate), ph.Update)
	payments.Post("/:id/received", requirePerm(authorize.ResourcePayment, authorize.ActionUpdate), ph.MarkReceived)
}
