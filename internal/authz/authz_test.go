package authz

import (
	"testing"

	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeUnknownPathDeniedForEveryRole(t *testing.T) {
	t.Parallel()

	for _, role := range domain.Roles() {
		assert.False(t, Authorize(role, "/payroll"), "role %s", role)
		assert.False(t, Authorize(role, ""), "role %s", role)
		assert.False(t, Authorize(role, "/blacklist/"), "role %s", role)
	}
}

func TestAuthorizeBlacklistRestrictedToHRAndAdmin(t *testing.T) {
	t.Parallel()

	assert.False(t, Authorize(domain.RoleUser, "/blacklist"))
	assert.False(t, Authorize(domain.RoleLeader, "/blacklist"))
	assert.False(t, Authorize(domain.RoleCoLeader, "/blacklist"))
	assert.True(t, Authorize(domain.RoleHR, "/blacklist"))
	assert.True(t, Authorize(domain.RoleAdmin, "/blacklist"))
}

func TestAuthorizeSharedResourcesOpenToAllRoles(t *testing.T) {
	t.Parallel()

	for _, role := range domain.Roles() {
		assert.True(t, Authorize(role, "/"), "role %s", role)
		assert.True(t, Authorize(role, "/attendance"), "role %s", role)
		assert.True(t, Authorize(role, "/settings"), "role %s", role)
	}
}

func TestVisibleResourcesFiltersByRole(t *testing.T) {
	t.Parallel()

	userPaths := paths(VisibleResources(domain.RoleUser))
	assert.Equal(t, []string{"/", "/attendance", "/settings"}, userPaths)

	leaderPaths := paths(VisibleResources(domain.RoleLeader))
	assert.Equal(t, []string{"/", "/employees", "/teams", "/attendance", "/settings"}, leaderPaths)

	adminPaths := paths(VisibleResources(domain.RoleAdmin))
	assert.Equal(t, []string{"/", "/employees", "/teams", "/attendance", "/blacklist", "/settings"}, adminPaths)
}

func TestVisibleResourcesUnknownRoleSeesNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, VisibleResources(domain.Role("guest")))
}

func paths(rules []ResourceRule) []string {
	out := make([]string, 0, len(rules))
	for _, rule := range rules {
		out = append(out, rule.Path)
	}
	return out
}
