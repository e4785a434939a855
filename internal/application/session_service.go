package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/nhileteam/nlt-cli/internal/ports"
	"go.uber.org/zap"
)

// SessionService owns the single client-local session: it restores it from
// the durable slot at startup, mutates it through Login/Logout, and hands
// out snapshots. Construct one per process and pass it to every consumer.
type SessionService struct {
	directory ports.IdentityDirectory
	store     ports.SessionStore
	clock     ports.Clock
	logger    *zap.Logger

	mu        sync.Mutex
	session   domain.Session
	loggingIn atomic.Bool
}

func NewSessionService(directory ports.IdentityDirectory, store ports.SessionStore, clock ports.Clock, logger *zap.Logger) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionService{
		directory: directory,
		store:     store,
		clock:     clock,
		logger:    logger,
		session:   domain.Session{Status: domain.SessionLoading},
	}
}

// Restore consults the durable slot once at startup. A valid record yields
// an authenticated session; a malformed record is discarded and treated as
// logged out, never surfaced as an error.
func (s *SessionService) Restore(ctx context.Context) (domain.Session, error) {
	identity, err := s.store.Load(ctx)
	switch {
	case err == nil:
		return s.commit(domain.Session{Identity: &identity, Status: domain.SessionAuthenticated}), nil
	case errors.Is(err, domain.ErrMalformedSession):
		s.logger.Warn("discarding malformed session record", zap.Error(err))
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.logger.Warn("clear malformed session record", zap.Error(clearErr))
		}
		return s.commit(domain.Session{Status: domain.SessionUnauthenticated}), nil
	case errors.Is(err, domain.ErrNoSession):
		return s.commit(domain.Session{Status: domain.SessionUnauthenticated}), nil
	default:
		return s.Current(), fmt.Errorf("load session record: %w", err)
	}
}

// Login resolves credentials against the directory and, on a match, adopts
// the secret-free identity and persists it. On any failure the session is
// left exactly as it was. Only one login may be in flight at a time;
// concurrent attempts get domain.ErrLoginInFlight.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if !s.loggingIn.CompareAndSwap(false, true) {
		return domain.Identity{}, domain.ErrLoginInFlight
	}
	defer s.loggingIn.Store(false)

	identity, err := s.directory.Find(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.logger.Info("login rejected", zap.String("email", email))
			return domain.Identity{}, err
		}
		return domain.Identity{}, fmt.Errorf("resolve credentials: %w", err)
	}

	if err := s.store.Save(ctx, identity); err != nil {
		return domain.Identity{}, fmt.Errorf("persist session record: %w", err)
	}

	s.commit(domain.Session{Identity: &identity, Status: domain.SessionAuthenticated})
	s.logger.Info("login",
		zap.String("id", identity.ID),
		zap.String("email", identity.Email),
		zap.String("role", string(identity.Role)))

	return identity, nil
}

// Logout clears the session and deletes the durable record. Calling it when
// already logged out is a no-op success.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}

	s.commit(domain.Session{Status: domain.SessionUnauthenticated})
	s.logger.Info("logout")
	return nil
}

// Current returns a snapshot of the session.
func (s *SessionService) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *SessionService) commit(session domain.Session) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return session
}
