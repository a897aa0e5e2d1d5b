package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ascendops/internal/models/db_models"
	"ascendops/pkg/utils"
)

func TestRequireAuthenticated(t *testing.T) {
	founder := Actor{ID: uuid.New(), Role: db_models.RoleFounder, Authenticated: true}
	freelancer := Actor{ID: uuid.New(), Role: db_models.RoleFreelancer, Authenticated: true}

	assert.NoError(t, RequireAuthenticated(founder))
	assert.NoError(t, RequireAuthenticated(freelancer))
	assert.ErrorIs(t, RequireAuthenticated(Actor{}), utils.ErrAuthRequired)
}

func TestRequireFounder(t *testing.T) {
	founder := Actor{ID: uuid.New(), Role: db_models.RoleFounder, Authenticated: true}
	freelancer := Actor{ID: uuid.New(), Role: db_models.RoleFreelancer, Authenticated: true}

	assert.NoError(t, RequireFounder(founder))
	assert.ErrorIs(t, RequireFounder(freelancer), utils.ErrForbidden)
	assert.ErrorIs(t, RequireFounder(Actor{}), utils.ErrAuthRequired)
}

// A founder role on an unauthenticated actor must not slip through; the
// authentication check runs first.
func TestRequireFounder_UnauthenticatedFounderRole(t *testing.T) {
	impostor := Actor{ID: uuid.New(), Role: db_models.RoleFounder, Authenticated: false}

	assert.ErrorIs(t, RequireFounder(impostor), utils.ErrAuthRequired)
}

func TestRequireSelfOrFounder(t *testing.T) {
	ownerID := uuid.New()
	owner := Actor{ID: ownerID, Role: db_models.RoleFreelancer, Authenticated: true}
	founder := Actor{ID: uuid.New(), Role: db_models.RoleFounder, Authenticated: true}
	bystander := Actor{ID: uuid.New(), Role: db_models.RoleFreelancer, Authenticated: true}

	assert.NoError(t, RequireSelfOrFounder(owner, ownerID))
	assert.NoError(t, RequireSelfOrFounder(founder, ownerID))
	assert.ErrorIs(t, RequireSelfOrFounder(bystander, ownerID), utils.ErrForbidden)
	assert.ErrorIs(t, RequireSelfOrFounder(Actor{}, ownerID), utils.ErrAuthRequired)
}

func TestIsFounder(t *testing.T) {
	assert.True(t, Actor{ID: uuid.New(), Role: db_models.RoleFounder, Authenticated: true}.IsFounder())
	assert.False(t, Actor{ID: uuid.New(), Role: db_models.RoleFreelancer, Authenticated: true}.IsFounder())
	assert.False(t, Actor{Role: db_models.RoleFounder}.IsFounder())
}
