// Package authz holds the static resource-visibility policy: which roles
// may see which navigable resource.
package authz

import "github.com/nhileteam/nlt-cli/internal/domain"

type ResourceRule struct {
	Path  string
	Title string
	Roles []domain.Role
}

var allRoles = []domain.Role{
	domain.RoleUser,
	domain.RoleHR,
	domain.RoleLeader,
	domain.RoleCoLeader,
	domain.RoleAdmin,
}

var managementRoles = []domain.Role{
	domain.RoleHR,
	domain.RoleLeader,
	domain.RoleCoLeader,
	domain.RoleAdmin,
}

// rules is evaluated in navigation order. Paths absent from this table are
// denied for every role.
var rules = []ResourceRule{
	{Path: "/", Title: "Dashboard", Roles: allRoles},
	{Path: "/employees", Title: "Employees", Roles: managementRoles},
	{Path: "/teams", Title: "Teams", Roles: managementRoles},
	{Path: "/attendance", Title: "Attendance", Roles: allRoles},
	{Path: "/blacklist", Title: "Blacklist", Roles: []domain.Role{domain.RoleHR, domain.RoleAdmin}},
	{Path: "/settings", Title: "Settings", Roles: allRoles},
}

// Authorize reports whether role may see resourcePath. Unknown paths are
// denied regardless of role.
func Authorize(role domain.Role, resourcePath string) bool {
	for _, rule := range rules {
		if rule.Path != resourcePath {
			continue
		}
		return rule.allows(role)
	}
	return false
}

// VisibleResources returns the navigation rules visible to role, in
// navigation order.
func VisibleResources(role domain.Role) []ResourceRule {
	visible := make([]ResourceRule, 0, len(rules))
	for _, rule := range rules {
		if rule.allows(role) {
			visible = append(visible, rule)
		}
	}
	return visible
}

// Resources returns every known rule, in navigation order.
func Resources() []ResourceRule {
	out := make([]ResourceRule, len(rules))
	copy(out, rules)
	return out
}

func (r ResourceRule) allows(role domain.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}
