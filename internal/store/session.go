package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/codec"
	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
)

// Session persists the current authenticated user under its own key.
type Session struct {
	kv  kv.Store
	log *zap.Logger
	mu  sync.Mutex
}

// NewSession returns a Session store over s.
func NewSession(s kv.Store, log *zap.Logger) *Session {
	return &Session{kv: s, log: log}
}

// Current returns the persisted user, or ok=false when logged out or the
// blob fails to decode.
func (s *Session) Current(ctx context.Context) (types.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok, err := s.kv.Get(ctx, currentUserKey)
	if err != nil {
		return types.User{}, false, err
	}
	if !ok {
		return types.User{}, false, nil
	}
	var user types.User
	if !codec.Decode(blob, &user) {
		s.log.Warn("discarding undecodable session blob", zap.String("key", currentUserKey))
		return types.User{}, false, nil
	}
	return user, true, nil
}

// Set persists user as the current session.
func (s *Session) Set(ctx context.Context, user types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := codec.Encode(user)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, currentUserKey, blob)
}

// Clear removes the persisted session.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Remove(ctx, currentUserKey)
}

// Compile-time assertion that Session implements domain.SessionStore.
var _ domain.SessionStore = (*Session)(nil)
