package toml

import (
	"fmt"

	"github.com/nhileteam/nlt-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int              `toml:"version"`
	Identities []identitySchema `toml:"identities"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported directory schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type identitySchema struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
	Role     string `toml:"role"`
	TeamID   string `toml:"team_id,omitempty"`
	Avatar   string `toml:"avatar,omitempty"`
}

// fromSchema converts a directory entry to a domain identity. The password
// never crosses this boundary.
func fromSchema(entry identitySchema) domain.Identity {
	return domain.Identity{
		ID:     entry.ID,
		Name:   entry.Name,
		Email:  entry.Email,
		Role:   domain.Role(entry.Role),
		TeamID: entry.TeamID,
		Avatar: entry.Avatar,
	}
}

// seedSchema is the hand-authored sample directory written on first run.
func seedSchema() fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Identities: []identitySchema{
			{
				ID:       "1",
				Name:     "Admin User",
				Email:    "admin@nhileteam.com",
				Password: "password",
				Role:     string(domain.RoleAdmin),
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=admin",
			},
			{
				ID:       "2",
				Name:     "HR Manager",
				Email:    "hr@nhileteam.com",
				Password: "password",
				Role:     string(domain.RoleHR),
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=hr",
			},
			{
				ID:       "3",
				Name:     "Team Leader",
				Email:    "leader@nhileteam.com",
				Password: "password",
				Role:     string(domain.RoleLeader),
				TeamID:   "1",
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=leader",
			},
			{
				ID:       "4",
				Name:     "Co-Leader",
				Email:    "coleader@nhileteam.com",
				Password: "password",
				Role:     string(domain.RoleCoLeader),
				TeamID:   "1",
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=coleader",
			},
			{
				ID:       "5",
				Name:     "Regular User",
				Email:    "user@nhileteam.com",
				Password: "password",
				Role:     string(domain.RoleUser),
				TeamID:   "1",
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=user",
			},
		},
	}
}
