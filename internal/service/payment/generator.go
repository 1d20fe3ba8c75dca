package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oculusgrp/dealdesk_backend/internal/commission"
	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entdealbroker "github.com/oculusgrp/dealdesk_backend/internal/repo/dealbroker"
	entpayment "github.com/oculusgrp/dealdesk_backend/internal/repo/payment"
	entsplit "github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	"github.com/oculusgrp/dealdesk_backend/pkg/database"
	"github.com/oculusgrp/dealdesk_backend/pkg/util/codes"
)

// GenerateSchedule replaces a deal's payment schedule wholesale: every
// existing payment row (and its splits) is removed and a fresh set is
// created from the deal's current commission terms, one split row per
// broker interest per payment. This is the only path that hard-deletes
// payments.
func (s *paymentService) GenerateSchedule(ctx context.Context, dealID uuid.UUID) error {
	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		d, err := getDeal(ctx, tx.Deal, dealID)
		if err != nil {
			return err
		}
		terms := dealTerms(d)

		interests, err := tx.DealBroker.Query().
			Where(entdealbroker.DealID(dealID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load broker interests: %w", err)
		}

		// Validate terms before touching existing rows.
		fields, err := commission.ComputePaymentFields(terms, commission.PaymentInput{})
		if err != nil {
			return err
		}

		// Discard the old schedule, splits first.
		oldIDs, err := tx.Payment.Query().
			Where(entpayment.DealID(dealID)).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("load old payments: %w", err)
		}
		if len(oldIDs) > 0 {
			if _, err := tx.PaymentSplit.Delete().
				Where(entsplit.PaymentIDIn(oldIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("delete old splits: %w", err)
			}
			if _, err := tx.Payment.Delete().
				Where(entpayment.IDIn(oldIDs...)).
				Exec(ctx); err != nil {
				return fmt.Errorf("delete old payments: %w", err)
			}
		}

		inputs := make([]commission.SplitInput, len(interests))
		for i, it := range interests {
			inputs[i] = commission.SplitInput{
				BrokerID:           it.BrokerID,
				OriginationPercent: it.OriginationPercent,
				SitePercent:        it.SitePercent,
				DealPercent:        it.DealPercent,
			}
		}
		rows := commission.ComputeSplits(terms, fields.AGCI, inputs)

		for seq := 1; seq <= d.NumberOfPayments; seq++ {
			invoice, err := codes.GenerateInvoiceNumber()
			if err != nil {
				return fmt.Errorf("generate invoice number: %w", err)
			}
			p, err := tx.Payment.Create().
				SetDealID(dealID).
				SetSequence(seq).
				SetPaymentAmount(fields.Amount).
				SetAgci(fields.AGCI).
				SetReferralFeeUsd(fields.ReferralFeeUSD).
				SetCommissionVersion(d.CommissionVersion).
				SetInvoiceNumber(invoice).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create payment %d: %w", seq, err)
			}

			for i, it := range interests {
				row := rows[i]
				if err := tx.PaymentSplit.Create().
					SetPaymentID(p.ID).
					SetBrokerID(it.BrokerID).
					SetSplitOriginationPercent(it.OriginationPercent).
					SetSplitOriginationUsd(row.OriginationUSD).
					SetSplitSitePercent(it.SitePercent).
					SetSplitSiteUsd(row.SiteUSD).
					SetSplitDealPercent(it.DealPercent).
					SetSplitDealUsd(row.DealUSD).
					SetSplitBrokerTotal(row.BrokerTotal).
					Exec(ctx); err != nil {
					return fmt.Errorf("create split: %w", err)
				}
			}
		}

		slog.Info("payment schedule generated",
			"deal_id", dealID,
			"payments", d.NumberOfPayments,
			"brokers", len(interests),
		)
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateUnpaidCount(ctx, dealID)
	return nil
}
