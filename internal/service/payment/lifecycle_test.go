package payment

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/oculusgrp/dealdesk_backend/internal/commission"
	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	"github.com/oculusgrp/dealdesk_backend/internal/repo/enttest"
)

// Cache errors are logged and swallowed, so pointing the client at a
// closed port lets the lifecycle paths run without a Redis.
func testRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return New(client, testRedis(), nil), client
}

// seedDeal creates a customer, a deal with the given payment count, and
// one broker holding the full interest on the deal.
func seedDeal(t *testing.T, ctx context.Context, client *repo.Client, numPayments int) *repo.Deal {
	t.Helper()

	cust := client.Customer.Create().
		SetName("Lakeside Restaurant Group").
		SaveX(ctx)

	d := client.Deal.Create().
		SetClientID(cust.ID).
		SetName("Lakeside pad site").
		SetFee(decimal.NewFromInt(40000)).
		SetNumberOfPayments(numPayments).
		SetAgci(decimal.NewFromInt(36000)).
		SetOriginationPercent(decimal.NewFromInt(40)).
		SetSitePercent(decimal.NewFromInt(40)).
		SetDealPercent(decimal.NewFromInt(20)).
		SetReferralFeePercent(decimal.NewFromInt(10)).
		SaveX(ctx)

	b := client.Broker.Create().
		SetDisplayName("Jordan Reyes").
		SaveX(ctx)

	client.DealBroker.Create().
		SetDealID(d.ID).
		SetBrokerID(b.ID).
		SetOriginationPercent(decimal.NewFromInt(100)).
		SetSitePercent(decimal.NewFromInt(100)).
		SetDealPercent(decimal.NewFromInt(100)).
		ExecX(ctx)

	return d
}

func TestArchiveUnpaidPayments(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t)
	d := seedDeal(t, ctx, client, 4)

	if err := svc.GenerateSchedule(ctx, d.ID); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	payments, err := svc.ListByDeal(ctx, d.ID, false)
	if err != nil {
		t.Fatalf("ListByDeal: %v", err)
	}
	if len(payments) != 4 {
		t.Fatalf("expected 4 payments, got %d", len(payments))
	}

	received, err := svc.MarkReceived(ctx, payments[0].ID, time.Now())
	if err != nil {
		t.Fatalf("MarkReceived: %v", err)
	}

	n, err := svc.ArchiveUnpaidPayments(ctx, d.ID)
	if err != nil {
		t.Fatalf("ArchiveUnpaidPayments: %v", err)
	}
	if n != 3 {
		t.Fatalf("archived = %d, want 3", n)
	}

	// The received row is historical fact and must survive untouched.
	got := client.Payment.GetX(ctx, received.ID)
	if !got.IsActive {
		t.Errorf("received payment was deactivated")
	}
	if got.DeletedAt != nil {
		t.Errorf("received payment was soft-deleted at %v", got.DeletedAt)
	}
	if !got.PaymentReceived {
		t.Errorf("received flag lost")
	}

	for _, p := range payments[1:] {
		row := client.Payment.GetX(ctx, p.ID)
		if row.IsActive {
			t.Errorf("payment %d still active after archive", row.Sequence)
		}
		if row.DeletedAt == nil {
			t.Errorf("payment %d has no deleted_at after archive", row.Sequence)
		}
	}

	// Second call matches nothing.
	n, err = svc.ArchiveUnpaidPayments(ctx, d.ID)
	if err != nil {
		t.Fatalf("second ArchiveUnpaidPayments: %v", err)
	}
	if n != 0 {
		t.Errorf("second archive = %d, want 0", n)
	}
}

func TestRestoreArchivedPayments(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t)
	d := seedDeal(t, ctx, client, 3)

	if err := svc.GenerateSchedule(ctx, d.ID); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	before, err := svc.ListByDeal(ctx, d.ID, false)
	if err != nil {
		t.Fatalf("ListByDeal: %v", err)
	}
	beforeSplits := make(map[int]decimal.Decimal, len(before))
	for _, p := range before {
		splits, err := svc.ListSplits(ctx, p.ID)
		if err != nil {
			t.Fatalf("ListSplits: %v", err)
		}
		if len(splits) != 1 {
			t.Fatalf("expected 1 split on payment %d, got %d", p.Sequence, len(splits))
		}
		beforeSplits[p.Sequence] = splits[0].SplitBrokerTotal
	}

	if _, err := svc.ArchiveUnpaidPayments(ctx, d.ID); err != nil {
		t.Fatalf("ArchiveUnpaidPayments: %v", err)
	}

	n, err := svc.RestoreArchivedPayments(ctx, d.ID)
	if err != nil {
		t.Fatalf("RestoreArchivedPayments: %v", err)
	}
	if n != 3 {
		t.Fatalf("restored = %d, want 3", n)
	}

	after, err := svc.ListByDeal(ctx, d.ID, false)
	if err != nil {
		t.Fatalf("ListByDeal after restore: %v", err)
	}
	if len(after) != 3 {
		t.Fatalf("expected 3 active payments after restore, got %d", len(after))
	}
	for i, p := range after {
		if !p.IsActive {
			t.Errorf("payment %d not active after restore", p.Sequence)
		}
		if p.DeletedAt != nil {
			t.Errorf("payment %d still soft-deleted after restore", p.Sequence)
		}
		if !p.PaymentAmount.Equal(before[i].PaymentAmount) {
			t.Errorf("payment %d amount changed: %s -> %s",
				p.Sequence, before[i].PaymentAmount, p.PaymentAmount)
		}
		if !p.Agci.Equal(before[i].Agci) {
			t.Errorf("payment %d agci changed: %s -> %s",
				p.Sequence, before[i].Agci, p.Agci)
		}

		splits, err := svc.ListSplits(ctx, p.ID)
		if err != nil {
			t.Fatalf("ListSplits after restore: %v", err)
		}
		if !splits[0].SplitBrokerTotal.Equal(beforeSplits[p.Sequence]) {
			t.Errorf("payment %d broker total changed: %s -> %s",
				p.Sequence, beforeSplits[p.Sequence], splits[0].SplitBrokerTotal)
		}
	}
}

func TestRestoreWithNothingArchived(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t)
	d := seedDeal(t, ctx, client, 2)

	if err := svc.GenerateSchedule(ctx, d.ID); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	// Nothing archived: a successful no-op, not an error.
	n, err := svc.RestoreArchivedPayments(ctx, d.ID)
	if err != nil {
		t.Fatalf("RestoreArchivedPayments: %v", err)
	}
	if n != 0 {
		t.Errorf("restored = %d, want 0", n)
	}
}

func TestPlanReactivation(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t)
	d := seedDeal(t, ctx, client, 3)

	if err := svc.GenerateSchedule(ctx, d.ID); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	if _, err := svc.ArchiveUnpaidPayments(ctx, d.ID); err != nil {
		t.Fatalf("ArchiveUnpaidPayments: %v", err)
	}

	action, err := svc.PlanReactivation(ctx, d.ID)
	if err != nil {
		t.Fatalf("PlanReactivation: %v", err)
	}
	if action != commission.Restore {
		t.Errorf("action = %s, want restore", action)
	}

	// Editing the terms bumps the version; the snapshot no longer
	// matches and the archived rows are stale.
	client.Deal.UpdateOneID(d.ID).
		SetCommissionVersion(d.CommissionVersion + 1).
		ExecX(ctx)

	action, err = svc.PlanReactivation(ctx, d.ID)
	if err != nil {
		t.Fatalf("PlanReactivation after edit: %v", err)
	}
	if action != commission.Regenerate {
		t.Errorf("action = %s, want regenerate", action)
	}
}

func TestGetUnpaidPaymentCount(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t)
	d := seedDeal(t, ctx, client, 4)

	if err := svc.GenerateSchedule(ctx, d.ID); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	n, err := svc.GetUnpaidPaymentCount(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetUnpaidPaymentCount: %v", err)
	}
	if n != 4 {
		t.Fatalf("unpaid = %d, want 4", n)
	}

	payments, err := svc.ListByDeal(ctx, d.ID, false)
	if err != nil {
		t.Fatalf("ListByDeal: %v", err)
	}
	if _, err := svc.MarkReceived(ctx, payments[0].ID, time.Now()); err != nil {
		t.Fatalf("MarkReceived: %v", err)
	}

	n, err = svc.GetUnpaidPaymentCount(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetUnpaidPaymentCount after receive: %v", err)
	}
	if n != 3 {
		t.Errorf("unpaid = %d, want 3", n)
	}
}
