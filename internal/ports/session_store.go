package ports

import (
	"context"

	"github.com/nhileteam/nlt-cli/internal/domain"
)

// SessionStore is the durable slot holding the persisted identity between
// runs. Load returns domain.ErrNoSession when the slot is empty and
// domain.ErrMalformedSession when the record cannot be decoded.
type SessionStore interface {
	Load(ctx context.Context) (domain.Identity, error)
	Save(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}
