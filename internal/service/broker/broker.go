// Package broker manages the broker roster referenced by deal
// interests and payment splits. Bank account numbers are stored
// AES-256-GCM encrypted with a SHA-256 hash column for lookups.
package broker

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entbroker "github.com/oculusgrp/dealdesk_backend/internal/repo/broker"
	"github.com/oculusgrp/dealdesk_backend/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	DisplayName string
	Email       string
	Phone       string
	BankAccount string
	UserID      *uuid.UUID
}

type UpdateRequest struct {
	DisplayName *string
	Email       *string
	Phone       *string
	BankAccount *string
	IsActive    *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Broker, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Broker, error)
	List(ctx context.Context, activeOnly bool, page, perPage int) ([]*repo.Broker, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Broker, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	// BankAccount decrypts and returns the broker's account number.
	BankAccount(ctx context.Context, id uuid.UUID) (string, error)
}

type brokerService struct {
	db     *repo.Client
	aesKey []byte
}

func New(db *repo.Client, aesKey []byte) Service {
	return &brokerService{db: db, aesKey: aesKey}
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

func (s *brokerService) Create(ctx context.Context, req CreateRequest) (*repo.Broker, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	c := s.db.Broker.Create().
		SetDisplayName(strings.TrimSpace(req.DisplayName)).
		SetEmail(email)
	if req.UserID != nil {
		c = c.SetUserID(*req.UserID)
	}
	if req.Phone != "" {
		phone, err := normalizePhone(req.Phone)
		if err != nil {
			return nil, err
		}
		c = c.SetPhone(phone)
	}
	if req.BankAccount != "" {
		enc, err := crypto.Encrypt(s.aesKey, req.BankAccount)
		if err != nil {
			return nil, fmt.Errorf("encrypt bank account: %w", err)
		}
		c = c.SetBankAccountEncrypted(enc).
			SetBankAccountHash(crypto.Hash(req.BankAccount))
	}

	b, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create broker: %w", err)
	}
	return b, nil
}

func (s *brokerService) Get(ctx context.Context, id uuid.UUID) (*repo.Broker, error) {
	b, err := s.db.Broker.Query().
		Where(entbroker.ID(id), entbroker.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBrokerNotFound
		}
		return nil, fmt.Errorf("get broker: %w", err)
	}
	return b, nil
}

func (s *brokerService) List(ctx context.Context, activeOnly bool, page, perPage int) ([]*repo.Broker, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Broker.Query().
		Where(entbroker.DeletedAtIsNil())
	if activeOnly {
		q = q.Where(entbroker.IsActive(true))
	}

	brokers, err := q.
		Order(entbroker.ByDisplayName(sql.OrderAsc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brokers: %w", err)
	}
	return brokers, nil
}

func (s *brokerService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Broker, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Broker.UpdateOne(b)
	if req.DisplayName != nil {
		upd = upd.SetDisplayName(strings.TrimSpace(*req.DisplayName))
	}
	if req.Email != nil {
		email, err := normalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		upd = upd.SetEmail(email)
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPhone(phone)
	}
	if req.BankAccount != nil {
		enc, err := crypto.Encrypt(s.aesKey, *req.BankAccount)
		if err != nil {
			return nil, fmt.Errorf("encrypt bank account: %w", err)
		}
		upd = upd.SetBankAccountEncrypted(enc).
			SetBankAccountHash(crypto.Hash(*req.BankAccount))
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update broker: %w", err)
	}
	return updated, nil
}

// Deactivate hides the broker from new deal assignments. Existing
// split rows keep referencing them so historical payouts stay intact.
func (s *brokerService) Deactivate(ctx context.Context, id uuid.UUID) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.db.Broker.UpdateOne(b).SetIsActive(false).Save(ctx); err != nil {
		return fmt.Errorf("deactivate broker: %w", err)
	}
	return nil
}

func (s *brokerService) BankAccount(ctx context.Context, id uuid.UUID) (string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if b.BankAccountEncrypted == nil || *b.BankAccountEncrypted == "" {
		return "", nil
	}
	account, err := crypto.Decrypt(s.aesKey, *b.BankAccountEncrypted)
	if err != nil {
		return "", fmt.Errorf("decrypt bank account: %w", err)
	}
	return account, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func normalizePhone(raw string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
