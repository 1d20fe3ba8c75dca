package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/oculusgrp/dealdesk_backend/internal/service/trends"
)

type TrendsHandler struct {
	svc trends.Service
}

func NewTrendsHandler(svc trends.Service) *TrendsHandler {
	return &TrendsHandler{svc: svc}
}

func mapTrendsError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, trends.ErrBadFilename):
		return badRequest(c, err.Error())
	case errors.Is(err, trends.ErrMissingStoreNo):
		return badRequest(c, err.Error())
	case errors.Is(err, trends.ErrLocationNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/trends/import
//
// Multipart upload of one yearly feed file (.xlsx workbook or .csv
// export). The survey year comes from the filename, so the original
// vendor name must be preserved.
func (h *TrendsHandler) Import(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "could not read uploaded file")
	}
	defer f.Close()

	stats, err := h.svc.ImportFeed(c.Context(), fh.Filename, f)
	if err != nil {
		return mapTrendsError(c, err)
	}

	return ok(c, stats)
}

// GET /api/v1/trends/locations/:storeNo
func (h *TrendsHandler) GetLocation(c fiber.Ctx) error {
	storeNo := c.Params("storeNo")
	if storeNo == "" {
		return badRequest(c, "store number is required")
	}

	loc, err := h.svc.GetLocation(c.Context(), storeNo)
	if err != nil {
		return mapTrendsError(c, err)
	}

	return ok(c, loc)
}

// GET /api/v1/trends/locations/:id/history
func (h *TrendsHandler) ListTrends(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid location id")
	}

	rows, err := h.svc.ListTrends(c.Context(), id)
	if err != nil {
		return mapTrendsError(c, err)
	}

	return ok(c, rows)
}
