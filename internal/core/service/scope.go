package service

import (
	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
)

// scopeFor derives the read filter for a role. Managers see the pending
// queue, accountants the approved ledger, submitters their own orders. Any
// other role is an invalid-role condition, not an empty result.
func scopeFor(caller ports.Identity) (ports.ListOrdersFilter, error) {
	switch caller.Role {
	case domain.RoleManager:
		return ports.ListOrdersFilter{Status: domain.StatusPending}, nil
	case domain.RoleAccountant:
		return ports.ListOrdersFilter{Status: domain.StatusApproved}, nil
	case domain.RoleUser:
		return ports.ListOrdersFilter{Username: caller.Name}, nil
	default:
		return ports.ListOrdersFilter{}, domain.ErrInvalidRole
	}
}

// canCreate gates order creation: submitters only.
func canCreate(caller ports.Identity) error {
	if caller.Role != domain.RoleUser {
		return domain.ErrForbidden
	}
	return nil
}

// canMutateContent gates content updates and deletes: submitters only, and
// only on their own orders. Ownership compares the order's owner name against
// the session claim's name.
func canMutateContent(caller ports.Identity, o *domain.Order) error {
	if caller.Role != domain.RoleUser {
		return domain.ErrForbidden
	}
	if o.Username != caller.Name {
		return domain.ErrNotOwner
	}
	return nil
}

// canMutateStatus gates status transitions: approvers only.
func canMutateStatus(caller ports.Identity) error {
	if caller.Role != domain.RoleManager {
		return domain.ErrForbidden
	}
	return nil
}
