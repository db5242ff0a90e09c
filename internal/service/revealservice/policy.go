package revealservice

import (
	"errors"

	"github.com/affilink/creditmarket/internal/domain"
)

// Policy outcomes. A nil result from CanReveal means the reveal is allowed.
var (
	ErrInvalidRoles = errors.New("invalid roles")
	ErrSameRole     = errors.New("same-role reveals forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// CanReveal is the role policy gating contact disclosure. Rules apply in
// order: admins see everyone, self-views are free, unknown roles are
// rejected, operators and affiliates may only reveal each other.
func CanReveal(revealerRole, targetRole string, revealerID, targetID int) error {
	if revealerRole == domain.RoleAdmin {
		return nil
	}
	if revealerID == targetID {
		return nil
	}
	if !domain.ValidRole(revealerRole) || !domain.ValidRole(targetRole) {
		return ErrInvalidRoles
	}
	if revealerRole == targetRole {
		return ErrSameRole
	}
	if (revealerRole == domain.RoleOperator && targetRole == domain.RoleAffiliate) ||
		(revealerRole == domain.RoleAffiliate && targetRole == domain.RoleOperator) {
		return nil
	}
	return ErrUnauthorized
}
