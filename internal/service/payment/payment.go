// Package payment implements the commission payment engine: the field
// calculator and split recalculator run inside every payment write
// transaction, the schedule generator builds payment and split rows
// from a deal's terms, and the lifecycle manager archives, restores,
// and regenerates schedules as deals move in and out of the lost
// stage.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/oculusgrp/dealdesk_backend/internal/commission"
	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entdeal "github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	entpayment "github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	entsplit "github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateRequest struct {
	// Amount pins payment_amount when set; clearing the override makes
	// the next write snap back to the scheduled amount.
	Amount         *decimal.Decimal
	ClearOverride  bool
	ReferralFeePct *decimal.Decimal
	ClearRefPct    bool
	PaymentDate    *time.Time
	InvoiceNumber  *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*repo.Payment, error)
	ListByDeal(ctx context.Context, dealID uuid.UUID, includeArchived bool) ([]*repo.Payment, error)
	ListSplits(ctx context.Context, paymentID uuid.UUID) ([]*repo.PaymentSplit, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Payment, error)
	MarkReceived(ctx context.Context, id uuid.UUID, receivedDate time.Time) (*repo.Payment, error)

	// Schedule generator.
	GenerateSchedule(ctx context.Context, dealID uuid.UUID) error

	// Lifecycle manager. Each call is independent and best-effort; the
	// deal's stage change is authoritative by the time these run.
	ArchiveUnpaidPayments(ctx context.Context, dealID uuid.UUID) (int, error)
	RestoreArchivedPayments(ctx context.Context, dealID uuid.UUID) (int, error)
	RegeneratePayments(ctx context.Context, dealID uuid.UUID) error
	GetUnpaidPaymentCount(ctx context.Context, dealID uuid.UUID) (int, error)
	PlanReactivation(ctx context.Context, dealID uuid.UUID) (commission.ReactivationAction, error)
}

type paymentService struct {
	db  *repo.Client
	rdb *redis.Client
	nc  *nats.Conn
}

func New(db *repo.Client, rdb *redis.Client, nc *nats.Conn) Service {
	return &paymentService{db: db, rdb: rdb, nc: nc}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func (s *paymentService) Get(ctx context.Context, id uuid.UUID) (*repo.Payment, error) {
	p, err := s.db.Payment.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (s *paymentService) ListByDeal(ctx context.Context, dealID uuid.UUID, includeArchived bool) ([]*repo.Payment, error) {
	q := s.db.Payment.Query().
		Where(entpayment.DealID(dealID))
	if !includeArchived {
		q = q.Where(entpayment.IsActive(true), entpayment.DeletedAtIsNil())
	}

	payments, err := q.
		Order(entpayment.BySequence(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) ListSplits(ctx context.Context, paymentID uuid.UUID) ([]*repo.PaymentSplit, error) {
	splits, err := s.db.PaymentSplit.Query().
		Where(entsplit.PaymentID(paymentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list splits: %w", err)
	}
	return splits, nil
}

// ---------------------------------------------------------------------------
// Writes — every mutation goes through the calculators in one tx
// ---------------------------------------------------------------------------

func (s *paymentService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Payment, error) {
	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	var updated *repo.Payment
	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		p, err := tx.Payment.Get(ctx, id)
		if err != nil {
			if repo.IsNotFound(err) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("get payment: %w", err)
		}

		d, err := tx.Deal.Get(ctx, p.DealID)
		if err != nil {
			return fmt.Errorf("get deal: %w", err)
		}

		// Assemble the row as it is about to be written.
		in := commission.PaymentInput{
			Amount:         p.PaymentAmount,
			AmountOverride: p.AmountOverride,
		}
		if req.Amount != nil {
			in.Amount = *req.Amount
			in.AmountOverride = true
		}
		if req.ClearOverride {
			in.AmountOverride = false
		}

		refOverride := p.ReferralFeePercentOverride
		if req.ReferralFeePct != nil {
			refOverride = req.ReferralFeePct
		}
		if req.ClearRefPct {
			refOverride = nil
		}
		in.ReferralFeePercentOverride = refOverride

		fields, err := commission.ComputePaymentFields(dealTerms(d), in)
		if err != nil {
			return err
		}

		upd := tx.Payment.UpdateOne(p).
			SetPaymentAmount(fields.Amount).
			SetAmountOverride(in.AmountOverride).
			SetAgci(fields.AGCI).
			SetReferralFeeUsd(fields.ReferralFeeUSD)
		if refOverride != nil {
			upd = upd.SetReferralFeePercentOverride(*refOverride)
		} else {
			upd = upd.ClearReferralFeePercentOverride()
		}
		if req.PaymentDate != nil {
			upd = upd.SetPaymentDate(*req.PaymentDate)
		}
		if req.InvoiceNumber != nil {
			upd = upd.SetInvoiceNumber(*req.InvoiceNumber)
		}

		updated, err = upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		// Split recalculation only when the fields it depends on moved.
		if commission.FieldsChanged(p.PaymentAmount, p.Agci, updated.PaymentAmount, updated.Agci) {
			if err := recalcSplits(ctx, tx, dealTerms(d), updated); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *paymentService) MarkReceived(ctx context.Context, id uuid.UUID, receivedDate time.Time) (*repo.Payment, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.PaymentReceived {
		return nil, ErrPaymentReceived
	}

	updated, err := s.db.Payment.UpdateOne(p).
		SetPaymentReceived(true).
		SetReceivedDate(receivedDate).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark received: %w", err)
	}

	s.invalidateUnpaidCount(ctx, p.DealID)

	if s.nc != nil {
		subject := "dealdesk.payment.received." + updated.ID.String()
		if pubErr := s.nc.Publish(subject, []byte(updated.ID.String())); pubErr != nil {
			slog.Warn("publish payment event failed", "subject", subject, "err", pubErr)
		}
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Helpers shared with the generator and lifecycle files
// ---------------------------------------------------------------------------

// dealTerms maps the deal row to the calculator's read-only view.
func dealTerms(d *repo.Deal) commission.DealTerms {
	return commission.DealTerms{
		Fee:                d.Fee,
		NumberOfPayments:   d.NumberOfPayments,
		AGCI:               d.Agci,
		OriginationPercent: d.OriginationPercent,
		SitePercent:        d.SitePercent,
		DealPercent:        d.DealPercent,
		ReferralFeePercent: d.ReferralFeePercent,
	}
}

// recalcSplits overwrites the dollar fields of every split row tied to
// the payment. It never creates or deletes rows; with no splits it is
// a no-op.
func recalcSplits(ctx context.Context, tx *repo.Tx, terms commission.DealTerms, p *repo.Payment) error {
	splits, err := tx.PaymentSplit.Query().
		Where(entsplit.PaymentID(p.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load splits: %w", err)
	}
	if len(splits) == 0 {
		return nil
	}

	inputs := make([]commission.SplitInput, len(splits))
	for i, sp := range splits {
		inputs[i] = commission.SplitInput{
			BrokerID:           sp.BrokerID,
			OriginationPercent: sp.SplitOriginationPercent,
			SitePercent:        sp.SplitSitePercent,
			DealPercent:        sp.SplitDealPercent,
		}
	}

	rows := commission.ComputeSplits(terms, p.Agci, inputs)
	for i, sp := range splits {
		row := rows[i]
		if err := tx.PaymentSplit.UpdateOne(sp).
			SetSplitOriginationUsd(row.OriginationUSD).
			SetSplitSiteUsd(row.SiteUSD).
			SetSplitDealUsd(row.DealUSD).
			SetSplitBrokerTotal(row.BrokerTotal).
			Exec(ctx); err != nil {
			return fmt.Errorf("update split: %w", err)
		}
	}
	return nil
}

// getDeal loads a live deal or maps not-found to the service sentinel.
func getDeal(ctx context.Context, q *repo.DealClient, dealID uuid.UUID) (*repo.Deal, error) {
	d, err := q.Query().
		Where(entdeal.ID(dealID), entdeal.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return d, nil
}
