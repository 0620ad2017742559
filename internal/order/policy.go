package order

import (
	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"
)

type Operation string

const (
	OpPlaceOrder       Operation = "order:place"
	OpUpdateItemStatus Operation = "order-item:update-status"
	OpFilterItems      Operation = "order-item:filter"
)

// Scope narrows what an allowed operation may touch. A non-nil OwnerID
// restricts reads to that user's order items.
type Scope struct {
	OwnerID *uint
}

// Authorize decides whether the caller may perform the operation and, for
// reads, how the result set must be scoped. It runs before any store access;
// denied calls never reach the repository.
func Authorize(caller utils.Caller, op Operation) (Scope, error) {
	if caller.ID == 0 {
		return Scope{}, apperr.New(apperr.Unauthenticated, "authenticated user not found")
	}

	switch op {
	case OpPlaceOrder:
		return Scope{}, nil

	case OpUpdateItemStatus:
		if !caller.IsAdmin() {
			return Scope{}, apperr.New(apperr.Forbidden, "only admins may update order statuses")
		}
		return Scope{}, nil

	case OpFilterItems:
		if !caller.IsAdmin() {
			owner := caller.ID
			return Scope{OwnerID: &owner}, nil
		}
		return Scope{}, nil

	default:
		return Scope{}, apperr.Newf(apperr.Forbidden, "unknown operation: %s", op)
	}
}
