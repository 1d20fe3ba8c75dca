package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/oculusgrp/dealdesk_backend/internal/service/broker"
)

type BrokerHandler struct {
	svc broker.Service
}

func NewBrokerHandler(svc broker.Service) *BrokerHandler {
	return &BrokerHandler{svc: svc}
}

func mapBrokerError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, broker.ErrBrokerNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, broker.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, broker.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, broker.ErrBrokerInactive):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/brokers
func (h *BrokerHandler) Create(c fiber.Ctx) error {
	var body struct {
		DisplayName string  `json:"display_name"`
		Email       string  `json:"email"`
		Phone       string  `json:"phone"`
		BankAccount string  `json:"bank_account"`
		UserID      *string `json:"user_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DisplayName == "" || body.Email == "" {
		return badRequest(c, "display_name and email are required")
	}

	var userID *uuid.UUID
	if body.UserID != nil && *body.UserID != "" {
		id, err := uuid.Parse(*body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		userID = &id
	}

	b, err := h.svc.Create(c.Context(), broker.CreateRequest{
		DisplayName: body.DisplayName,
		Email:       body.Email,
		Phone:       body.Phone,
		BankAccount: body.BankAccount,
		UserID:      userID,
	})
	if err != nil {
		return mapBrokerError(c, err)
	}

	return created(c, b)
}

// GET /api/v1/brokers
func (h *BrokerHandler) List(c fiber.Ctx) error {
	var q struct {
		ActiveOnly bool `query:"active_only"`
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	brokers, err := h.svc.List(c.Context(), q.ActiveOnly, q.Page, q.PerPage)
	if err != nil {
		return mapBrokerError(c, err)
	}

	return ok(c, brokers)
}

// GET /api/v1/brokers/:id
func (h *BrokerHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid broker id")
	}

	b, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapBrokerError(c, err)
	}

	return ok(c, b)
}

// PATCH /api/v1/brokers/:id
func (h *BrokerHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid broker id")
	}

	var body struct {
		DisplayName *string `json:"display_name"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		BankAccount *string `json:"bank_account"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	b, err := h.svc.Update(c.Context(), id, broker.UpdateRequest{
		DisplayName: body.DisplayName,
		Email:       body.Email,
		Phone:       body.Phone,
		BankAccount: body.BankAccount,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapBrokerError(c, err)
	}

	return ok(c, b)
}

// DELETE /api/v1/brokers/:id
func (h *BrokerHandler) Deactivate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid broker id")
	}

	if err := h.svc.Deactivate(c.Context(), id); err != nil {
		return mapBrokerError(c, err)
	}

	return noContent(c)
}

// GET /api/v1/brokers/:id/bank-account  (admin)
func (h *BrokerHandler) BankAccount(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid broker id")
	}

	account, err := h.svc.BankAccount(c.Context(), id)
	if err != nil {
		return mapBrokerError(c, err)
	}

	return ok(c, fiber.Map{"bank_account": account})
}
