package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oculusgrp/dealdesk_backend/internal/service/deal"
)

type DealHandler struct {
	svc deal.Service
}

func NewDealHandler(svc deal.Service) *DealHandler {
	return &DealHandler{svc: svc}
}

func mapDealError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, deal.ErrDealNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, deal.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, deal.ErrBrokerNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, deal.ErrInvalidStage):
		return badRequest(c, err.Error())
	case errors.Is(err, deal.ErrInvalidPercent):
		return badRequest(c, err.Error())
	case errors.Is(err, deal.ErrInvalidSchedule):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/deals
func (h *DealHandler) Create(c fiber.Ctx) error {
	var body struct {
		ClientID         string          `json:"client_id"`
		Name             string          `json:"name"`
		PropertyAddress  string          `json:"property_address"`
		Fee              decimal.Decimal `json:"fee"`
		NumberOfPayments int             `json:"number_of_payments"`
		AGCI             decimal.Decimal `json:"agci"`

		OriginationPercent decimal.Decimal `json:"origination_percent"`
		SitePercent        decimal.Decimal `json:"site_percent"`
		DealPercent        decimal.Decimal `json:"deal_percent"`
		ReferralFeePercent decimal.Decimal `json:"referral_fee_percent"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}

	d, err := h.svc.Create(c.Context(), deal.CreateRequest{
		ClientID:           clientID,
		Name:               body.Name,
		PropertyAddress:    body.PropertyAddress,
		Fee:                body.Fee,
		NumberOfPayments:   body.NumberOfPayments,
		AGCI:               body.AGCI,
		OriginationPercent: body.OriginationPercent,
		SitePercent:        body.SitePercent,
		DealPercent:        body.DealPercent,
		ReferralFeePercent: body.ReferralFeePercent,
	})
	if err != nil {
		return mapDealError(c, err)
	}

	return created(c, d)
}

// GET /api/v1/deals
func (h *DealHandler) List(c fiber.Ctx) error {
	var q struct {
		Stage   string `query:"stage"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	deals, err := h.svc.List(c.Context(), q.Stage, q.Page, q.PerPage)
	if err != nil {
		return mapDealError(c, err)
	}

	return ok(c, deals)
}

// GET /api/v1/deals/:id
func (h *DealHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	d, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapDealError(c, err)
	}

	return ok(c, d)
}

// PATCH /api/v1/deals/:id
func (h *DealHandler) UpdateTerms(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	var body struct {
		Name            *string `json:"name"`
		PropertyAddress *string `json:"property_address"`

		Fee              *decimal.Decimal `json:"fee"`
		NumberOfPayments *int             `json:"number_of_payments"`
		AGCI             *decimal.Decimal `json:"agci"`

		OriginationPercent *decimal.Decimal `json:"origination_percent"`
		SitePercent        *decimal.Decimal `json:"site_percent"`
		DealPercent        *decimal.Decimal `json:"deal_percent"`
		ReferralFeePercent *decimal.Decimal `json:"referral_fee_percent"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.UpdateTerms(c.Context(), id, deal.UpdateTermsRequest{
		Name:               body.Name,
		PropertyAddress:    body.PropertyAddress,
		Fee:                body.Fee,
		NumberOfPayments:   body.NumberOfPayments,
		AGCI:               body.AGCI,
		OriginationPercent: body.OriginationPercent,
		SitePercent:        body.SitePercent,
		DealPercent:        body.DealPercent,
		ReferralFeePercent: body.ReferralFeePercent,
	})
	if err != nil {
		return mapDealError(c, err)
	}

	return ok(c, d)
}

// POST /api/v1/deals/:id/stage
//
// The stage write always wins. If the follow-up payment lifecycle step
// fails the response still reports the new stage, with a warning the
// UI can surface.
func (h *DealHandler) ChangeStage(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	var body struct {
		Stage string `json:"stage"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Stage == "" {
		return badRequest(c, "stage is required")
	}

	result, err := h.svc.ChangeStage(c.Context(), id, body.Stage)
	if err != nil {
		return mapDealError(c, err)
	}

	resp := fiber.Map{
		"deal":             result.Deal,
		"lifecycle_action": result.LifecycleAction,
		"archived_count":   result.ArchivedCount,
		"restored_count":   result.RestoredCount,
	}
	if result.LifecycleError != nil {
		resp["lifecycle_warning"] = result.LifecycleError.Error()
	}

	return ok(c, resp)
}

// ---------------------------------------------------------------------------
// Broker interests
// ---------------------------------------------------------------------------

// PUT /api/v1/deals/:id/brokers
func (h *DealHandler) SetBrokerInterest(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	var body struct {
		BrokerID           string          `json:"broker_id"`
		OriginationPercent decimal.Decimal `json:"origination_percent"`
		SitePercent        decimal.Decimal `json:"site_percent"`
		DealPercent        decimal.Decimal `json:"deal_percent"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	brokerID, err := uuid.Parse(body.BrokerID)
	if err != nil {
		return badRequest(c, "invalid broker_id")
	}

	db, err := h.svc.SetBrokerInterest(c.Context(), dealID, deal.BrokerInterestRequest{
		BrokerID:           brokerID,
		OriginationPercent: body.OriginationPercent,
		SitePercent:        body.SitePercent,
		DealPercent:        body.DealPercent,
	})
	if err != nil {
		return mapDealError(c, err)
	}

	return ok(c, db)
}

// GET /api/v1/deals/:id/brokers
func (h *DealHandler) ListBrokerInterests(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}

	interests, err := h.svc.ListBrokerInterests(c.Context(), dealID)
	if err != nil {
		return mapDealError(c, err)
	}

	return ok(c, interests)
}

// DELETE /api/v1/deals/:id/brokers/:brokerId
func (h *DealHandler) RemoveBrokerInterest(c fiber.Ctx) error {
	dealID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid deal id")
	}
	brokerID, err := uuid.Parse(c.Params("brokerId"))
	if err != nil {
		return badRequest(c, "invalid broker id")
	}

	if err := h.svc.RemoveBrokerInterest(c.Context(), dealID, brokerID); err != nil {
		return mapDealError(c, err)
	}

	return noContent(c)
}
