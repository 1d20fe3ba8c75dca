package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// Desk-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Admin: god mode
		{RoleAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Broker: read-only view of the book plus own notifications
		{RoleBroker, DomainSys, ResourceDeal, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourceDeal, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourceDealBroker, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourceDealBroker, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourcePayment, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourcePayment, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourcePaymentSplit, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourcePaymentSplit, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourceClient, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourceClient, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourceBroker, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourceBroker, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourceRestaurantData, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourceRestaurantData, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourceNotification, ActionRead, EffectAllow},
		{RoleBroker, DomainSys, ResourceNotification, ActionList, EffectAllow},
		{RoleBroker, DomainSys, ResourceNotification, ActionUpdate, EffectAllow},

		// Assistant: day-to-day data entry, no user management or RBAC
		{RoleAssistant, DomainSys, ResourceClient, ActionManage, EffectAllow},
		{RoleAssistant, DomainSys, ResourceBroker, ActionManage, EffectAllow},
		{RoleAssistant, DomainSys, ResourceDeal, ActionManage, EffectAllow},
		{RoleAssistant, DomainSys, ResourceDealBroker, ActionManage, EffectAllow},
		{RoleAssistant, DomainSys, ResourcePayment, ActionManage, EffectAllow},
		{RoleAssistant, DomainSys, ResourcePaymentSplit, ActionRead, EffectAllow},
		{RoleAssistant, DomainSys, ResourcePaymentSplit, ActionList, EffectAllow},
		{RoleAssistant, DomainSys, ResourceRestaurantData, ActionManage, EffectAllow},
		{RoleAssistant, DomainSys, ResourceRestaurantData, ActionExecute, EffectAllow},
		{RoleAssistant, DomainSys, ResourceNotification, ActionRead, EffectAllow},
		{RoleAssistant, DomainSys, ResourceNotification, ActionList, EffectAllow},
		{RoleAssistant, DomainSys, ResourceNotification, ActionUpdate, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own sessions and tokens
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignDeskRole assigns a desk-level role to a user.
// Valid roles: RoleAdmin, RoleBroker, RoleAssistant
func AssignDeskRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleBroker, RoleAssistant:
		// valid desk roles that can be assigned programmatically
	case RoleAdmin:
		// admin is valid but should be assigned with caution
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveDeskRole removes a desk-level role from a user.
func RemoveDeskRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// GetDeskRoles returns all desk-level roles a user has.
func GetDeskRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainSys)
}
