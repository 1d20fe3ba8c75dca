package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oculusgrp/dealdesk_backend/internal/commission"
	entpayment "github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
)

const unpaidCountTTL = time.Minute

func redisKeyUnpaidCount(dealID uuid.UUID) string {
	return "deal:unpaid_count:" + dealID.String()
}

// ArchiveUnpaidPayments soft-deletes every unreceived payment on the
// deal. Received payments are historical fact and survive stage churn
// untouched. Safe to call repeatedly: already-archived rows don't
// match the predicate again.
func (s *paymentService) ArchiveUnpaidPayments(ctx context.Context, dealID uuid.UUID) (int, error) {
	if _, err := getDeal(ctx, s.db.Deal, dealID); err != nil {
		return 0, err
	}

	n, err := s.db.Payment.Update().
		Where(
			entpayment.DealID(dealID),
			entpayment.PaymentReceived(false),
			entpayment.IsActive(true),
		).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("archive payments: %w", err)
	}

	s.invalidateUnpaidCount(ctx, dealID)
	slog.Info("payments archived", "deal_id", dealID, "count", n)
	return n, nil
}

// RestoreArchivedPayments flips archived rows back with every prior
// value (amounts, AGCI, overrides, split dollars) intact. A deal with
// nothing archived restores zero rows; that is a no-op, not an error.
func (s *paymentService) RestoreArchivedPayments(ctx context.Context, dealID uuid.UUID) (int, error) {
	if _, err := getDeal(ctx, s.db.Deal, dealID); err != nil {
		return 0, err
	}

	n, err := s.db.Payment.Update().
		Where(
			entpayment.DealID(dealID),
			entpayment.IsActive(false),
			entpayment.DeletedAtNotNil(),
		).
		SetIsActive(true).
		ClearDeletedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("restore payments: %w", err)
	}

	s.invalidateUnpaidCount(ctx, dealID)
	slog.Info("payments restored", "deal_id", dealID, "count", n)
	return n, nil
}

// RegeneratePayments discards the deal's schedule and rebuilds it from
// current commission terms.
func (s *paymentService) RegeneratePayments(ctx context.Context, dealID uuid.UUID) error {
	return s.GenerateSchedule(ctx, dealID)
}

// PlanReactivation inspects the archived rows and picks the default
// lost→active action: restore when the deal's commission terms are
// unchanged since archival, regenerate otherwise.
func (s *paymentService) PlanReactivation(ctx context.Context, dealID uuid.UUID) (commission.ReactivationAction, error) {
	d, err := getDeal(ctx, s.db.Deal, dealID)
	if err != nil {
		return commission.Regenerate, err
	}

	archived, err := s.db.Payment.Query().
		Where(
			entpayment.DealID(dealID),
			entpayment.IsActive(false),
			entpayment.DeletedAtNotNil(),
		).
		Select(entpayment.FieldCommissionVersion).
		All(ctx)
	if err != nil {
		return commission.Regenerate, fmt.Errorf("load archived payments: %w", err)
	}

	versions := make([]int, len(archived))
	for i, p := range archived {
		versions[i] = p.CommissionVersion
	}
	return commission.PlanReactivation(d.CommissionVersion, versions), nil
}

// GetUnpaidPaymentCount counts active, unreceived payments, with a
// short-lived Redis cache in front (the deal list polls this).
func (s *paymentService) GetUnpaidPaymentCount(ctx context.Context, dealID uuid.UUID) (int, error) {
	key := redisKeyUnpaidCount(dealID)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		if n, convErr := strconv.Atoi(cached); convErr == nil {
			return n, nil
		}
	} else if err != redis.Nil {
		slog.Warn("unpaid count cache read failed", "deal_id", dealID, "err", err)
	}

	n, err := s.db.Payment.Query().
		Where(
			entpayment.DealID(dealID),
			entpayment.PaymentReceived(false),
			entpayment.IsActive(true),
			entpayment.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unpaid payments: %w", err)
	}

	if err := s.rdb.Set(ctx, key, strconv.Itoa(n), unpaidCountTTL).Err(); err != nil {
		slog.Warn("unpaid count cache write failed", "deal_id", dealID, "err", err)
	}
	return n, nil
}

func (s *paymentService) invalidateUnpaidCount(ctx context.Context, dealID uuid.UUID) {
	if err := s.rdb.Del(ctx, redisKeyUnpaidCount(dealID)).Err(); err != nil {
		slog.Warn("unpaid count cache invalidation failed", "deal_id", dealID, "err", err)
	}
}
