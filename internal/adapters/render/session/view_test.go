package session

import (
	"testing"

	"github.com/nhileteam/nlt-cli/internal/authz"
	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAuthenticatedSessionWithNav(t *testing.T) {
	identity := domain.Identity{
		ID:     "2",
		Name:   "HR Manager",
		Email:  "hr@nhileteam.com",
		Role:   domain.RoleHR,
		TeamID: "",
	}

	output, err := Render(
		domain.Session{Identity: &identity, Status: domain.SessionAuthenticated},
		authz.VisibleResources(identity.Role),
	)

	require.NoError(t, err)
	assert.Contains(t, output, "HR Manager (2)")
	assert.Contains(t, output, "hr@nhileteam.com")
	assert.Contains(t, output, "role: hr")
	assert.Contains(t, output, "/blacklist")
	assert.Contains(t, output, "/employees")
}

func TestRenderNavOmitsDeniedResources(t *testing.T) {
	identity := domain.Identity{
		ID:     "5",
		Name:   "Regular User",
		Email:  "user@nhileteam.com",
		Role:   domain.RoleUser,
		TeamID: "1",
	}

	output, err := Render(
		domain.Session{Identity: &identity, Status: domain.SessionAuthenticated},
		authz.VisibleResources(identity.Role),
	)

	require.NoError(t, err)
	assert.Contains(t, output, "/attendance")
	assert.Contains(t, output, "team: 1")
	assert.NotContains(t, output, "/blacklist")
	assert.NotContains(t, output, "/employees")
}

func TestRenderUnauthenticatedSession(t *testing.T) {
	output, err := Render(domain.Session{Status: domain.SessionUnauthenticated}, nil)

	require.NoError(t, err)
	assert.Contains(t, output, "Not logged in.")
}
