package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oculusgrp/dealdesk_backend/internal/commission"
	"github.com/oculusgrp/dealdesk_backend/internal/service/payment"
)

type PaymentHandler struct {
	svc payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func mapPaymentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, payment.ErrDealNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, payment.ErrPaymentReceived):
		return conflict(c, err.Error())
	case errors.Is(err, payment.ErrNegativeAmount):
		return badRequest(c, err.Error())
	case errors.Is(err, commission.ErrInvalidPaymentCount):
		// Deal misconfiguration; the write was rejected outright.
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/payments/:id
func (h *PaymentHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	p, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, p)
}

// GET /api/v1/deals/:id/payments?include_archived=true
func (h *PaymentHandler) ListByDeal(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	var q struct {
		IncludeArchived bool `query:"include_archived"`
	}
	_ = c.Bind().Query(&q)

	payments, err := h.svc.ListByDeal(c.Context(), dealID, q.IncludeArchived)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, payments)
}

// GET /api/v1/deals/:id/payments/unpaid-count
func (h *PaymentHandler) UnpaidCount(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	count, err := h.svc.GetUnpaidPaymentCount(c.Context(), dealID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, fiber.Map{"unpaid_count": count})
}

// POST /api/v1/deals/:id/payments/generate
func (h *PaymentHandler) GenerateSchedule(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	if err := h.svc.GenerateSchedule(c.Context(), dealID); err != nil {
		return mapPaymentError(c, err)
	}

	payments, err := h.svc.ListByDeal(c.Context(), dealID, false)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return created(c, payments)
}

// POST /api/v1/deals/:id/payments/archive
func (h *PaymentHandler) Archive(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	n, err := h.svc.ArchiveUnpaidPayments(c.Context(), dealID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, fiber.Map{"archived_count": n})
}

// POST /api/v1/deals/:id/payments/restore
func (h *PaymentHandler) Restore(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	n, err := h.svc.RestoreArchivedPayments(c.Context(), dealID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, fiber.Map{"restored_count": n})
}

// POST /api/v1/deals/:id/payments/regenerate
//
// Unlike the restore endpoint this always rebuilds the schedule from
// the deal's current terms, discarding any archived rows.
func (h *PaymentHandler) Regenerate(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	if err := h.svc.RegeneratePayments(c.Context(), dealID); err != nil {
		return mapPaymentError(c, err)
	}

	payments, err := h.svc.ListByDeal(c.Context(), dealID, false)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, payments)
}

// GET /api/v1/payments/:id/splits
func (h *PaymentHandler) ListSplits(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	splits, err := h.svc.ListSplits(c.Context(), id)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, splits)
}

// PATCH /api/v1/payments/:id
func (h *PaymentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	var body struct {
		Amount         *decimal.Decimal `json:"amount"`
		ClearOverride  bool             `json:"clear_override"`
		ReferralFeePct *decimal.Decimal `json:"referral_fee_percent"`
		ClearRefPct    bool             `json:"clear_referral_fee_percent"`
		PaymentDate    *time.Time       `json:"payment_date"`
		InvoiceNumber  *string          `json:"invoice_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, payment.UpdateRequest{
		Amount:         body.Amount,
		ClearOverride:  body.ClearOverride,
		ReferralFeePct: body.ReferralFeePct,
		ClearRefPct:    body.ClearRefPct,
		PaymentDate:    body.PaymentDate,
		InvoiceNumber:  body.InvoiceNumber,
	})
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, p)
}

// POST /api/v1/payments/:id/received
func (h *PaymentHandler) MarkReceived(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	var body struct {
		ReceivedDate *time.Time `json:"received_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	receivedDate := time.Now()
	if body.ReceivedDate != nil {
		receivedDate = *body.ReceivedDate
	}

	p, err := h.svc.MarkReceived(c.Context(), id, receivedDate)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, p)
}
