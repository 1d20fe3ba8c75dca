// Package client manages the restaurant-chain clients that deals hang
// off of. The ent entity is named Customer because Client is reserved
// by the generated database handle.
package client

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entcustomer "github.com/oculusgrp/dealdesk_backend/internal/repo/customer"
	entdeal "github.com/oculusgrp/dealdesk_backend/internal/repo/deal"
)

type CreateRequest struct {
	Name        string
	ContactName string
	Email       string
	Phone       string
	Notes       string
}

type UpdateRequest struct {
	Name        *string
	ContactName *string
	Email       *string
	Phone       *string
	Notes       *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Customer, error)
	List(ctx context.Context, search string, page, perPage int) ([]*repo.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &clientService{db: db}
}

func (s *clientService) Create(ctx context.Context, req CreateRequest) (*repo.Customer, error) {
	c := s.db.Customer.Create().
		SetName(strings.TrimSpace(req.Name))
	if req.ContactName != "" {
		c = c.SetContactName(req.ContactName)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
		c = c.SetEmail(email)
	}
	if req.Phone != "" {
		c = c.SetPhone(req.Phone)
	}
	if req.Notes != "" {
		c = c.SetNotes(req.Notes)
	}

	created, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return created, nil
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*repo.Customer, error) {
	c, err := s.db.Customer.Query().
		Where(entcustomer.ID(id), entcustomer.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *clientService) List(ctx context.Context, search string, page, perPage int) ([]*repo.Customer, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Customer.Query().
		Where(entcustomer.DeletedAtIsNil())
	if search != "" {
		q = q.Where(entcustomer.NameContainsFold(search))
	}

	clients, err := q.
		Order(entcustomer.ByName(sql.OrderAsc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Customer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Customer.UpdateOne(c)
	if req.Name != nil {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.ContactName != nil {
		upd = upd.SetContactName(*req.ContactName)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
		upd = upd.SetEmail(email)
	}
	if req.Phone != nil {
		upd = upd.SetPhone(*req.Phone)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes the client. Refused while any non-lost deal
// still references it.
func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	live, err := s.db.Deal.Query().
		Where(
			entdeal.ClientID(id),
			entdeal.StageNEQ(entdeal.StageLost),
			entdeal.DeletedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check client deals: %w", err)
	}
	if live {
		return ErrClientHasDeals
	}

	if _, err := s.db.Customer.UpdateOne(c).SetDeletedAt(time.Now()).Save(ctx); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
