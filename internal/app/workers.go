package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entbroker "github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	entdeal "github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
	entsplit "github.com/oculusgrp/dealdesk_backend/internal/repo/paymentsplit"
	entuser "github.com/oculusgrp/dealdesk_backend/internal/repo/user"
	"github.com/oculusgrp/dealdesk_backend/internal/service/notification"
	"github.com/oculusgrp/dealdesk_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	Email    *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startDealWorker(p.NC, p.DB, p.NotifSvc, p.Email)
			startPaymentWorker(p.NC, p.DB, p.NotifSvc, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// deal_worker
// ---------------------------------------------------------------------------

// startDealWorker fans deal stage events out to in-app notifications
// for admins; a failed lifecycle step additionally emails them.
func startDealWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, emailCli *email.Client) {
	activeAdmins := func(ctx context.Context) []*repo.User {
		admins, err := db.User.Query().
			Where(
				entuser.RoleEQ(entuser.RoleAdmin),
				entuser.StatusEQ(entuser.StatusACTIVE),
			).
			All(ctx)
		if err != nil {
			slog.Warn("deal_worker: load admins failed", "err", err)
			return nil
		}
		return admins
	}

	notifyAdmins := func(ctx context.Context, d *repo.Deal, typ, title string) {
		for _, admin := range activeAdmins(ctx) {
			_, err := notifSvc.Create(ctx, notification.CreateRequest{
				UserID: admin.ID,
				Type:   typ,
				Title:  title,
				Data:   map[string]any{"deal_id": d.ID.String(), "deal_name": d.Name},
			})
			if err != nil {
				slog.Warn("deal_worker: create notification failed", "err", err)
			}
		}
	}

	loadDeal := func(ctx context.Context, msg *nats.Msg) *repo.Deal {
		idStr := strings.TrimSpace(string(msg.Data))
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil
		}
		d, err := db.Deal.Query().
			Where(entdeal.ID(id)).
			Only(ctx)
		if err != nil {
			slog.Warn("deal_worker: deal not found", "id", idStr, "err", err)
			return nil
		}
		return d
	}

	_, err := nc.Subscribe("dealdesk.deal.lost.*", func(msg *nats.Msg) {
		ctx := context.Background()
		d := loadDeal(ctx, msg)
		if d == nil {
			return
		}
		notifyAdmins(ctx, d, "deal_lost", "Deal marked lost: "+d.Name)
	})
	if err != nil {
		slog.Error("deal_worker: subscribe deal.lost failed", "err", err)
	}

	_, err = nc.Subscribe("dealdesk.deal.reactivated.*", func(msg *nats.Msg) {
		ctx := context.Background()
		d := loadDeal(ctx, msg)
		if d == nil {
			return
		}
		notifyAdmins(ctx, d, "deal_reactivated", "Deal reactivated: "+d.Name)
	})
	if err != nil {
		slog.Error("deal_worker: subscribe deal.reactivated failed", "err", err)
	}

	_, err = nc.Subscribe("dealdesk.deal.lifecycle_failed.*", func(msg *nats.Msg) {
		ctx := context.Background()
		d := loadDeal(ctx, msg)
		if d == nil {
			return
		}
		notifyAdmins(ctx, d, "lifecycle_failed", "Payment lifecycle step failed: "+d.Name)

		addrs := []string{}
		for _, a := range activeAdmins(ctx) {
			addrs = append(addrs, a.Email)
		}
		if len(addrs) == 0 {
			return
		}
		m := email.BuildLifecycleAlertEmail(addrs, email.LifecycleAlertData{
			DealName: d.Name,
			DealID:   d.ID.String(),
			Action:   "lifecycle",
			Detail:   "stage change committed but the payment action failed; re-run it from the deal page",
		})
		if err := emailCli.Send(ctx, m); err != nil {
			slog.Warn("deal_worker: lifecycle alert email failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("deal_worker: subscribe deal.lifecycle_failed failed", "err", err)
	}

	slog.Info("deal_worker: started")
}

// ---------------------------------------------------------------------------
// payment_worker
// ---------------------------------------------------------------------------

// startPaymentWorker tells each broker on a received payment what
// their share is.
func startPaymentWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, emailCli *email.Client) {
	_, err := nc.Subscribe("dealdesk.payment.received.*", func(msg *nats.Msg) {
		idStr := strings.TrimSpace(string(msg.Data))
		id, err := uuid.Parse(idStr)
		if err != nil {
			return
		}
		ctx := context.Background()

		p, err := db.Payment.Get(ctx, id)
		if err != nil {
			slog.Warn("payment_worker: payment not found", "id", idStr, "err", err)
			return
		}
		d, err := db.Deal.Get(ctx, p.DealID)
		if err != nil {
			slog.Warn("payment_worker: deal not found", "id", p.DealID, "err", err)
			return
		}

		splits, err := db.PaymentSplit.Query().
			Where(entsplit.PaymentID(p.ID)).
			All(ctx)
		if err != nil {
			slog.Warn("payment_worker: load splits failed", "err", err)
			return
		}

		for _, sp := range splits {
			b, err := db.Broker.Query().
				Where(entbroker.ID(sp.BrokerID)).
				Only(ctx)
			if err != nil {
				slog.Warn("payment_worker: broker not found", "id", sp.BrokerID, "err", err)
				continue
			}

			if b.UserID != nil {
				_, err := notifSvc.Create(ctx, notification.CreateRequest{
					UserID: *b.UserID,
					Type:   "payment_received",
					Title:  "Payment received on " + d.Name,
					Data: map[string]any{
						"deal_id":      d.ID.String(),
						"payment_id":   p.ID.String(),
						"broker_total": sp.SplitBrokerTotal.StringFixed(2),
					},
				})
				if err != nil {
					slog.Warn("payment_worker: create notification failed", "err", err)
				}
			}

			// Not every broker has an email on file.
			if b.Email == nil || *b.Email == "" {
				continue
			}
			m := email.BuildPaymentReceivedEmail(
				*b.Email,
				b.DisplayName,
				d.Name,
				"$"+p.PaymentAmount.StringFixed(2),
				"$"+sp.SplitBrokerTotal.StringFixed(2),
			)
			if err := emailCli.Send(ctx, m); err != nil {
				slog.Warn("payment_worker: broker email failed", "broker_id", b.ID, "err", err)
			}
		}
	})
	if err != nil {
		slog.Error("payment_worker: subscribe payment.received failed", "err", err)
	}

	slog.Info("payment_worker: started")
}
