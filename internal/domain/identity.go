package domain

type Role string

const (
	RoleUser     Role = "user"
	RoleHR       Role = "hr"
	RoleLeader   Role = "leader"
	RoleCoLeader Role = "co-leader"
	RoleAdmin    Role = "admin"
)

func Roles() []Role {
	return []Role{RoleUser, RoleHR, RoleLeader, RoleCoLeader, RoleAdmin}
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleHR, RoleLeader, RoleCoLeader, RoleAdmin:
		return true
	default:
		return false
	}
}

// Identity is the authenticated actor's profile. It never carries the
// credential secret; the directory strips it before handing one out.
type Identity struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	TeamID string
	Avatar string
}
