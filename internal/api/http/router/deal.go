package router

import (
	"github.com/oculusgrp/dealdesk_backend/internal/api/http/handler"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerDealRoutes(
	api fiber.Router,
	dh *handler.DealHandler,
	ph *handler.PaymentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	deals := api.Group("/deals", authRequired)

	deals.Post("/", requirePerm(authorize.ResourceDeal, authorize.ActionCreate), dh.Create)
	deals.Get("/", requirePerm(authorize.ResourceDeal, authorize.ActionList), dh.List)
	deals.Get("/:id", requirePerm(authorize.ResourceDeal, authorize.ActionRead), dh.Get)
	deals.Patch("/:id", requirePerm(authorize.ResourceDeal, authorize.ActionUpdate), dh.UpdateTerms)
	deals.Post("/:id/stage", requirePerm(authorize.ResourceDeal, authorize.ActionUpdate), dh.ChangeStage)

	// Broker interests
	deals.Put("/:id/brokers", requirePerm(authorize.ResourceDealBroker, authorize.ActionUpdate), dh.SetBrokerInterest)
	deals.Get("/:id/brokers", requirePerm(authorize.ResourceDealBroker, authorize.ActionList), dh.ListBrokerInterests)
	deals.Delete("/:id/brokers/:brokerId", requirePerm(authorize.ResourceDealBroker, authorize.ActionDelete), dh.RemoveBrokerInterest)

	// Per-deal payment schedule
	deals.Get("/:id/payments", requirePerm(authorize.ResourcePayment, authorize.ActionList), ph.ListByDeal)
	deals.Get("/:id/payments/unpaid-count", requirePerm(authorize.ResourcePayment, authorize.ActionList), ph.UnpaidCount)
	deals.Post("/:id/payments/generate", requirePerm(authorize.ResourcePayment, authorize.ActionCreate), ph.GenerateSchedule)

	// Manual lifecycle overrides; ChangeStage runs these automatically,
	// these routes re-run a failed step or force the other policy.
	deals.Post("/:id/payments/archive", requirePerm(authorize.ResourcePayment, authorize.ActionArchive), ph.Archive)
	deals.Post("/:id/payments/restore", requirePerm(authorize.ResourcePayment, authorize.ActionArchive), ph.Restore)
	deals.Post("/:id/payments/regenerate", requirePerm(authorize.ResourcePayment, authorize.ActionCreate), ph.Regenerate)
}
