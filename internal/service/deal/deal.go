// Package deal owns deal CRUD, broker interests, and the stage
// machine. On a stage change it acts as the payment engine's caller:
// the stage write is authoritative, and exactly one lifecycle
// operation (archive, restore, or regenerate) runs after it.
package deal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"

	"github.com/oculusgrp/dealdesk_backend/internal/commission"
	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entcustomer "github.com/oculusgrp/dealdesk_backend/internal/repo/customer"
	entdeal "github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	entdealbroker "github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	svcpayment "github.com/oculusgrp/dealdesk_backend/internal/service/payment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	ClientID         uuid.UUID
	Name             string
	PropertyAddress  string
	Fee              decimal.Decimal
	NumberOfPayments int
	AGCI             decimal.Decimal

	OriginationPercent decimal.Decimal
	SitePercent        decimal.Decimal
	DealPercent        decimal.Decimal
	ReferralFeePercent decimal.Decimal
}

type UpdateTermsRequest struct {
	Name            *string
	PropertyAddress *string

	Fee              *decimal.Decimal
	NumberOfPayments *int
	AGCI             *decimal.Decimal

	OriginationPercent *decimal.Decimal
	SitePercent        *decimal.Decimal
	DealPercent        *decimal.Decimal
	ReferralFeePercent *decimal.Decimal
}

type BrokerInterestRequest struct {
	BrokerID           uuid.UUID
	OriginationPercent decimal.Decimal
	SitePercent        decimal.Decimal
	DealPercent        decimal.Decimal
}

// StageChangeResult reports the stage write plus whatever lifecycle
// action ran after it. A lifecycle failure does not undo the stage
// change; it surfaces here for the UI to show as a warning.
type StageChangeResult struct {
	Deal            *repo.Deal
	LifecycleAction string
	ArchivedCount   int
	RestoredCount   int
	LifecycleError  error
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Deal, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Deal, error)
	List(ctx context.Context, stage string, page, perPage int) ([]*repo.Deal, error)
	UpdateTerms(ctx context.Context, id uuid.UUID, req UpdateTermsRequest) (*repo.Deal, error)
	ChangeStage(ctx context.Context, id uuid.UUID, stage string) (*StageChangeResult, error)

	SetBrokerInterest(ctx context.Context, dealID uuid.UUID, req BrokerInterestRequest) (*repo.DealBroker, error)
	RemoveBrokerInterest(ctx context.Context, dealID, brokerID uuid.UUID) error
	ListBrokerInterests(ctx context.Context, dealID uuid.UUID) ([]*repo.DealBroker, error)
}

type dealService struct {
	db       *repo.Client
	payments svcpayment.Service
	nc       *nats.Conn
}

func New(db *repo.Client, payments svcpayment.Service, nc *nats.Conn) Service {
	return &dealService{db: db, payments: payments, nc: nc}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

func (s *dealService) Create(ctx context.Context, req CreateRequest) (*repo.Deal, error) {
	if req.NumberOfPayments <= 0 {
		return nil, ErrInvalidSchedule
	}
	if err := validatePercents(req.OriginationPercent, req.SitePercent, req.DealPercent, req.ReferralFeePercent); err != nil {
		return nil, err
	}

	exists, err := s.db.Customer.Query().
		Where(entcustomer.ID(req.ClientID), entcustomer.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	c := s.db.Deal.Create().
		SetClientID(req.ClientID).
		SetName(req.Name).
		SetFee(req.Fee).
		SetNumberOfPayments(req.NumberOfPayments).
		SetAgci(req.AGCI).
		SetOriginationPercent(req.OriginationPercent).
		SetSitePercent(req.SitePercent).
		SetDealPercent(req.DealPercent).
		SetReferralFeePercent(req.ReferralFeePercent)
	if req.PropertyAddress != "" {
		c = c.SetPropertyAddress(req.PropertyAddress)
	}

	d, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}
	return d, nil
}

func (s *dealService) Get(ctx context.Context, id uuid.UUID) (*repo.Deal, error) {
	d, err := s.db.Deal.Query().
		Where(entdeal.ID(id), entdeal.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return d, nil
}

func (s *dealService) List(ctx context.Context, stage string, page, perPage int) ([]*repo.Deal, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Deal.Query().
		Where(entdeal.DeletedAtIsNil())
	if stage != "" {
		st := entdeal.Stage(stage)
		if err := entdeal.StageValidator(st); err != nil {
			return nil, ErrInvalidStage
		}
		q = q.Where(entdeal.StageEQ(st))
	}

	deals, err := q.
		Order(entdeal.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return deals, nil
}

// UpdateTerms edits the deal's commission inputs. Any change to them
// bumps commission_version; existing payment rows are corrected lazily
// on their next write, or eagerly via schedule regeneration.
func (s *dealService) UpdateTerms(ctx context.Context, id uuid.UUID, req UpdateTermsRequest) (*repo.Deal, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.NumberOfPayments != nil && *req.NumberOfPayments <= 0 {
		return nil, ErrInvalidSchedule
	}

	upd := s.db.Deal.UpdateOne(d)
	termsChanged := false

	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}
	if req.PropertyAddress != nil {
		upd = upd.SetPropertyAddress(*req.PropertyAddress)
	}
	if req.Fee != nil && !req.Fee.Equal(d.Fee) {
		upd = upd.SetFee(*req.Fee)
		termsChanged = true
	}
	if req.NumberOfPayments != nil && *req.NumberOfPayments != d.NumberOfPayments {
		upd = upd.SetNumberOfPayments(*req.NumberOfPayments)
		termsChanged = true
	}
	if req.AGCI != nil && !req.AGCI.Equal(d.Agci) {
		upd = upd.SetAgci(*req.AGCI)
		termsChanged = true
	}
	for _, pct := range []struct {
		val  *decimal.Decimal
		prev decimal.Decimal
		set  func(decimal.Decimal) *repo.DealUpdateOne
	}{
		{req.OriginationPercent, d.OriginationPercent, upd.SetOriginationPercent},
		{req.SitePercent, d.SitePercent, upd.SetSitePercent},
		{req.DealPercent, d.DealPercent, upd.SetDealPercent},
		{req.ReferralFeePercent, d.ReferralFeePercent, upd.SetReferralFeePercent},
	} {
		if pct.val == nil {
			continue
		}
		if err := validatePercents(*pct.val); err != nil {
			return nil, err
		}
		if !pct.val.Equal(pct.prev) {
			pct.set(*pct.val)
			termsChanged = true
		}
	}

	if termsChanged {
		upd = upd.SetCommissionVersion(d.CommissionVersion + 1)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Stage machine
// ---------------------------------------------------------------------------

// isLost reports whether a stage is the terminal-loss stage. Every
// other stage counts as active for the payment engine.
func isLost(stage entdeal.Stage) bool {
	return stage == entdeal.StageLost
}

func (s *dealService) ChangeStage(ctx context.Context, id uuid.UUID, stage string) (*StageChangeResult, error) {
	next := entdeal.Stage(stage)
	if err := entdeal.StageValidator(next); err != nil {
		return nil, ErrInvalidStage
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := d.Stage

	upd := s.db.Deal.UpdateOne(d).SetStage(next)
	if next == entdeal.StageClosed && d.ClosedDate == nil {
		upd = upd.SetClosedDate(time.Now())
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update stage: %w", err)
	}

	res := &StageChangeResult{Deal: updated}
	if prev == next {
		return res, nil
	}

	// The stage write above is authoritative. Whatever happens next is
	// best-effort and must not roll it back.
	switch {
	case !isLost(prev) && isLost(next):
		res.LifecycleAction = "archive"
		res.ArchivedCount, res.LifecycleError = s.payments.ArchiveUnpaidPayments(ctx, id)
		s.publishStageEvent(ctx, "lost", updated)

	case isLost(prev) && !isLost(next):
		action, planErr := s.payments.PlanReactivation(ctx, id)
		if planErr != nil {
			res.LifecycleError = planErr
			break
		}
		res.LifecycleAction = action.String()
		if action == commission.Restore {
			res.RestoredCount, res.LifecycleError = s.payments.RestoreArchivedPayments(ctx, id)
		} else {
			res.LifecycleError = s.payments.RegeneratePayments(ctx, id)
		}
		s.publishStageEvent(ctx, "reactivated", updated)
	}

	if res.LifecycleError != nil {
		slog.Warn("stage lifecycle step failed",
			"deal_id", id,
			"action", res.LifecycleAction,
			"err", res.LifecycleError,
		)
		s.publishStageEvent(ctx, "lifecycle_failed", updated)
	}
	return res, nil
}

func (s *dealService) publishStageEvent(_ context.Context, event string, d *repo.Deal) {
	if s.nc == nil {
		return
	}
	subject := "dealdesk.deal." + event + "." + d.ID.String()
	if err := s.nc.Publish(subject, []byte(d.ID.String())); err != nil {
		slog.Warn("publish stage event failed", "subject", subject, "err", err)
	}
}

// ---------------------------------------------------------------------------
// Broker interests
// ---------------------------------------------------------------------------

func (s *dealService) SetBrokerInterest(ctx context.Context, dealID uuid.UUID, req BrokerInterestRequest) (*repo.DealBroker, error) {
	if err := validatePercents(req.OriginationPercent, req.SitePercent, req.DealPercent); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, dealID); err != nil {
		return nil, err
	}

	existing, err := s.db.DealBroker.Query().
		Where(entdealbroker.DealID(dealID), entdealbroker.BrokerID(req.BrokerID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get broker interest: %w", err)
	}

	if existing != nil {
		updated, err := s.db.DealBroker.UpdateOne(existing).
			SetOriginationPercent(req.OriginationPercent).
			SetSitePercent(req.SitePercent).
			SetDealPercent(req.DealPercent).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update broker interest: %w", err)
		}
		return updated, nil
	}

	created, err := s.db.DealBroker.Create().
		SetDealID(dealID).
		SetBrokerID(req.BrokerID).
		SetOriginationPercent(req.OriginationPercent).
		SetSitePercent(req.SitePercent).
		SetDealPercent(req.DealPercent).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create broker interest: %w", err)
	}
	return created, nil
}

func (s *dealService) RemoveBrokerInterest(ctx context.Context, dealID, brokerID uuid.UUID) error {
	n, err := s.db.DealBroker.Delete().
		Where(entdealbroker.DealID(dealID), entdealbroker.BrokerID(brokerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove broker interest: %w", err)
	}
	if n == 0 {
		return ErrBrokerNotFound
	}
	return nil
}

func (s *dealService) ListBrokerInterests(ctx context.Context, dealID uuid.UUID) ([]*repo.DealBroker, error) {
	interests, err := s.db.DealBroker.Query().
		Where(entdealbroker.DealID(dealID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list broker interests: %w", err)
	}
	return interests, nil
}

func validatePercents(vals ...decimal.Decimal) error {
	for _, v := range vals {
		if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
			return ErrInvalidPercent
		}
	}
	return nil
}
