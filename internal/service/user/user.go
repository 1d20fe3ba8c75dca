package user

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/oculusgrp/dealdesk_backend/config"
	"github.com/oculusgrp/dealdesk_backend/internal/repo"
	entuser "github.com/oculusgrp/dealdesk_backend/internal/repo/user"
	"github.com/oculusgrp/dealdesk_backend/pkg/authorize"
	"github.com/oculusgrp/dealdesk_backend/pkg/email"
	"github.com/oculusgrp/dealdesk_backend/pkg/util/codes"
	"github.com/oculusgrp/dealdesk_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      string
	// Initial password; generated when empty. The user must change it
	// on first login either way.
	TempPassword string
}

// CreateResult carries the new row plus the generated temporary
// password, which is never stored in clear anywhere else.
type CreateResult struct {
	User         *repo.User
	TempPassword string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	List(ctx context.Context, page, perPage int) ([]*repo.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.User, error)
	Suspend(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	db          *repo.Client
	emailClient *email.Client
	auth        authorize.IAuthorization
	cfg         *config.Config
}

func New(db *repo.Client, emailClient *email.Client, auth authorize.IAuthorization, cfg *config.Config) Service {
	return &userService{db: db, emailClient: emailClient, auth: auth, cfg: cfg}
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

func (s *userService) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	addr := strings.ToLower(strings.TrimSpace(req.Email))
	if addr == "" || !strings.Contains(addr, "@") {
		return nil, ErrInvalidEmail
	}
	role := entuser.Role(req.Role)
	if err := entuser.RoleValidator(role); err != nil {
		return nil, ErrInvalidRole
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(addr), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	tempPass := req.TempPassword
	if tempPass == "" {
		tempPass, err = codes.GenerateTempPassword()
		if err != nil {
			return nil, fmt.Errorf("generate temp password: %w", err)
		}
	}

	passHash, err := password.Hash(tempPass)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetEmail(addr).
		SetPasswordHash(passHash).
		SetMustChangePassword(true).
		SetRole(role)
	if req.FirstName != "" {
		c = c.SetFirstName(req.FirstName)
	}
	if req.LastName != "" {
		c = c.SetLastName(req.LastName)
	}
	if phone != "" {
		c = c.SetPhone(phone)
	}

	u, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.assignRoles(ctx, u.ID, role); err != nil {
		return nil, err
	}

	// Invitation email is best-effort; account exists either way.
	_ = s.emailClient.SendWelcome(ctx, addr, req.FirstName)

	return &CreateResult{User: u, TempPassword: tempPass}, nil
}

// assignRoles grants the Casbin groupings that back the user's DB role:
// the desk role in the sys domain and the self role in their private
// domain.
func (s *userService) assignRoles(ctx context.Context, id uuid.UUID, role entuser.Role) error {
	deskRole, found := authorize.UserRoleToRBACRole[string(role)]
	if !found {
		return ErrInvalidRole
	}
	if err := authorize.AssignDeskRole(ctx, s.auth, id.String(), deskRole); err != nil {
		return fmt.Errorf("assign desk role: %w", err)
	}
	if err := authorize.AssignUserSelfRole(ctx, s.auth, id.String()); err != nil {
		return fmt.Errorf("assign self role: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, page, perPage int) ([]*repo.User, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	users, err := s.db.User.Query().
		Where(entuser.DeletedAtIsNil()).
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPhone(phone)
	}
	var newRole *entuser.Role
	if req.Role != nil {
		role := entuser.Role(*req.Role)
		if err := entuser.RoleValidator(role); err != nil {
			return nil, ErrInvalidRole
		}
		if role != u.Role {
			newRole = &role
		}
		upd = upd.SetRole(role)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Keep the Casbin grouping in step with the DB role.
	if newRole != nil {
		if oldRole, found := authorize.UserRoleToRBACRole[string(u.Role)]; found {
			if err := authorize.RemoveDeskRole(ctx, s.auth, id.String(), oldRole); err != nil {
				return nil, fmt.Errorf("remove desk role: %w", err)
			}
		}
		deskRole := authorize.UserRoleToRBACRole[string(*newRole)]
		if err := authorize.AssignDeskRole(ctx, s.auth, id.String(), deskRole); err != nil {
			return nil, fmt.Errorf("assign desk role: %w", err)
		}
	}
	return updated, nil
}

func (s *userService) Suspend(ctx context.Context, id uuid.UUID) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.db.User.UpdateOne(u).
		SetStatus("SUSPENDED").
		Exec(ctx)
}

// normalizePhone validates a phone number and returns it in E.164, or
// an empty string for empty input.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
