package auth

import (
	"github.com/google/uuid"

	"ascendops/internal/models/db_models"
	"ascendops/pkg/utils"
)

// Actor is the caller identity every domain operation receives. It is
// rebuilt per request from the verified token; services never consult
// ambient state to learn who is acting.
type Actor struct {
	ID            uuid.UUID
	Role          db_models.Role
	Authenticated bool
}

func (a Actor) IsFounder() bool {
	return a.Authenticated && a.Role == db_models.RoleFounder
}

// RequireAuthenticated gates read paths and any-staff mutations such as
// card checkout.
func RequireAuthenticated(actor Actor) error {
	if !actor.Authenticated {
		return utils.ErrAuthRequired
	}
	return nil
}

// RequireFounder gates founder-only mutations.
func RequireFounder(actor Actor) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}
	if actor.Role != db_models.RoleFounder {
		return utils.ErrForbidden
	}
	return nil
}

// RequireSelfOrFounder gates mutations owned by a specific user, such as
// an assignee updating their own edit task.
func RequireSelfOrFounder(actor Actor, ownerID uuid.UUID) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}
	if actor.Role == db_models.RoleFounder || actor.ID == ownerID {
		return nil
	}
	return utils.ErrForbidden
}
