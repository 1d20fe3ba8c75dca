package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/oculusgrp/dealdesk_backend/config"
	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	"github.com/oculusgrp/dealdesk_backend/internal/service/auth"
	svcbroker "github.com/oculusgrp/dealdesk_backend/internal/service/broker"
	svcclient "github.com/oculusgrp/dealdesk_backend/internal/service/client"
	svcdeal "github.com/oculusgrp/dealdesk_backend/internal/service/deal"
	"github.com/oculusgrp/dealdesk_backend/internal/service/notification"
	svcpayment "github.com/oculusgrp/dealdesk_backend/internal/service/payment"
	svctrends "github.com/oculusgrp/dealdesk_backend/internal/service/trends"
	"github.com/oculusgrp/dealdesk_backend/internal/service/user"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/oculusgrp/dealdesk_backend/pkg/crypto"
	"github.com/oculusgrp/dealdesk_backend/pkg/email"
	pasetotoken "github.com/oculusgrp/dealdesk_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideClientService,
		ProvideBrokerService,
		ProvideDealService,
		ProvidePaymentService,
		ProvideTrendsService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client, emailClient *email.Client, auth authorize.IAuthorization, cfg *config.Config) user.Service {
	return user.New(db, emailClient, auth, cfg)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideClientService(db *repo.Client) svcclient.Service {
	return svcclient.New(db)
}

func ProvideBrokerService(db *repo.Client, cfg *config.Config) (svcbroker.Service, error) {
	key, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return svcbroker.New(db, key), nil
}

func ProvideDealService(db *repo.Client, payments svcpayment.Service, nc *nats.Conn) svcdeal.Service {
	return svcdeal.New(db, payments, nc)
}

func ProvidePaymentService(db *repo.Client, rdb *redis.Client, nc *nats.Conn) svcpayment.Service {
	return svcpayment.New(db, rdb, nc)
}

func ProvideTrendsService(db *repo.Client) svctrends.Service {
	return svctrends.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
