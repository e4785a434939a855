package ports

import (
	"context"

	"github.com/nhileteam/nlt-cli/internal/domain"
)

// IdentityDirectory resolves credentials to an identity. Implementations
// must return the identity with the secret already stripped, and
// domain.ErrInvalidCredentials when no entry matches exactly.
type IdentityDirectory interface {
	Find(ctx context.Context, email, password string) (domain.Identity, error)
}
