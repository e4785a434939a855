// Package file persists the session identity to a durable slot on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/nhileteam/nlt-cli/internal/ports"
)

const (
	storeDirMode    = 0o700
	recordFileMode  = 0o600
	recordFileName  = "session-identity.json"
	tempFilePattern = ".session-identity-*.json.tmp"
)

// recordSchema is the persisted shape: the secret-free identity as a JSON
// object. Field names follow the wire format of the hosted system.
type recordSchema struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	TeamID string `json:"teamId,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Load reads the slot. Absence is domain.ErrNoSession; a record that cannot
// be decoded or fails basic shape checks is domain.ErrMalformedSession.
func (s *Store) Load(ctx context.Context) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Identity{}, domain.ErrNoSession
		}
		return domain.Identity{}, fmt.Errorf("read session record: %w", err)
	}

	var record recordSchema
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrMalformedSession, err)
	}

	identity := domain.Identity{
		ID:     record.ID,
		Name:   record.Name,
		Email:  record.Email,
		Role:   domain.Role(record.Role),
		TeamID: record.TeamID,
		Avatar: record.Avatar,
	}
	if identity.ID == "" || identity.Email == "" || !identity.Role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: incomplete identity", domain.ErrMalformedSession)
	}

	return identity, nil
}

func (s *Store) Save(ctx context.Context, identity domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create session store directory: %w", err)
	}

	data, err := json.MarshalIndent(recordSchema{
		ID:     identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   string(identity.Role),
		TeamID: identity.TeamID,
		Avatar: identity.Avatar,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tempFile, err := os.CreateTemp(s.root, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session record: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session record: %w", err)
	}

	if err := tempFile.Chmod(recordFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session record: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session record: %w", err)
	}

	if err := os.Rename(tempName, s.recordPath()); err != nil {
		return fmt.Errorf("replace session record: %w", err)
	}

	cleanup = false
	return nil
}

// Clear deletes the slot. Clearing an empty slot is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.recordPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}

	return nil
}

func (s *Store) recordPath() string {
	return filepath.Join(s.root, recordFileName)
}
