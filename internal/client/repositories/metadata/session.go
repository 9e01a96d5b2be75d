package metadata

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
)

const (
	sessionKey  = "session"
	lastSyncKey = "favorites_synced_at"
)

// SessionStore persists the signed-in session on top of a Repository.
type SessionStore struct {
	repo Repository
}

func NewSessionStore(repo Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Load returns the zero Session when none is stored.
func (s *SessionStore) Load(ctx context.Context) (models.Session, error) {
	b, err := s.repo.Get(ctx, sessionKey)
	if err != nil || b == nil {
		return models.Session{}, err
	}
	return models.UnmarshalSession(b)
}

func (s *SessionStore) Save(ctx context.Context, sess models.Session) error {
	b, err := sess.Marshal()
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, sessionKey, b)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, sessionKey); err != nil {
		return err
	}
	return s.repo.Delete(ctx, lastSyncKey)
}

// MarkSynced records when favorites were last reconciled with the server.
func (s *SessionStore) MarkSynced(ctx context.Context, at time.Time) error {
	return s.repo.Set(ctx, lastSyncKey, []byte(at.UTC().Format(time.RFC3339)))
}

// LastSynced returns the zero time when favorites were never reconciled.
func (s *SessionStore) LastSynced(ctx context.Context) (time.Time, error) {
	b, err := s.repo.Get(ctx, lastSyncKey)
	if err != nil || b == nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, string(b))
}
