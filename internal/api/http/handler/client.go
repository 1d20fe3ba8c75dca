package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/oculusgrp/dealdesk_backend/internal/service/client"
)

type ClientHandler struct {
	svc client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func mapClientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, client.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, client.ErrClientHasDeals):
		return conflict(c, err.Error())
	case errors.Is(err, client.ErrInvalidEmail):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/clients
func (h *ClientHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		ContactName string `json:"contact_name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Notes       string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	cl, err := h.svc.Create(c.Context(), client.CreateRequest{
		Name:        body.Name,
		ContactName: body.ContactName,
		Email:       body.Email,
		Phone:       body.Phone,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return created(c, cl)
}

// GET /api/v1/clients
func (h *ClientHandler) List(c fiber.Ctx) error {
	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	clients, err := h.svc.List(c.Context(), q.Search, q.Page, q.PerPage)
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, clients)
}

// GET /api/v1/clients/:id
func (h *ClientHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	cl, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, cl)
}

// PATCH /api/v1/clients/:id
func (h *ClientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		Name        *string `json:"name"`
		ContactName *string `json:"contact_name"`
		Email       *string `json:"email"`
		Phone       *string `json:"phone"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Update(c.Context(), id, client.UpdateRequest{
		Name:        body.Name,
		ContactName: body.ContactName,
		Email:       body.Email,
		Phone:       body.Phone,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapClientError(c, err)
	}

	return ok(c, cl)
}

// DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapClientError(c, err)
	}

	return noContent(c)
}
