package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
)

// Users persists the user collection.
//
// Username uniqueness is not enforced here; callers that need it check via
// ByUsername before adding.
type Users struct {
	kv  kv.Store
	log *zap.Logger
	mu  sync.Mutex
}

// NewUsers returns a Users store over s.
func NewUsers(s kv.Store, log *zap.Logger) *Users {
	return &Users{kv: s, log: log}
}

// All returns every stored user.
func (s *Users) All(ctx context.Context) ([]types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// ByID returns the user with the given id.
func (s *Users) ByID(ctx context.Context, id types.ID) (types.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return types.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return types.User{}, false, nil
}

// ByUsername returns the first user with the given username.
func (s *Users) ByUsername(ctx context.Context, username string) (types.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return types.User{}, false, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return types.User{}, false, nil
}

// SaveAll overwrites the whole collection.
func (s *Users) SaveAll(ctx context.Context, users []types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, users)
}

// Add assigns the next id, stamps CreatedAt and LastSeen, appends and
// persists. The stored record is returned.
func (s *Users) Add(ctx context.Context, user types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return types.User{}, err
	}
	user.ID = nextID(userIDs(users))
	now := time.Now().UTC()
	user.CreatedAt = now
	user.LastSeen = now

	users = append(users, user)
	if err := s.save(ctx, users); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Update replaces the record with user's id in place, preserving order.
// found is false when no record matches; the collection is untouched then.
func (s *Users) Update(ctx context.Context, user types.User) (types.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return user, false, err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return user, true, s.save(ctx, users)
		}
	}
	return user, false, nil
}

// Delete removes the record with the given id. It does not cascade; the
// directory service owns cross-collection cleanup.
func (s *Users) Delete(ctx context.Context, id types.ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}
	return true, s.save(ctx, kept)
}

// SetBlockFlag stamps the global blocked markers on the user record.
func (s *Users) SetBlockFlag(ctx context.Context, id, blocker types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range users {
		if users[i].ID == id {
			users[i].IsBlocked = true
			users[i].BlockedBy = blocker
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, users)
}

// ClearBlockFlag removes the global blocked markers from the user record,
// whoever set them.
func (s *Users) ClearBlockFlag(ctx context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range users {
		if users[i].ID == id {
			users[i].IsBlocked = false
			users[i].BlockedBy = 0
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, users)
}

func (s *Users) load(ctx context.Context) ([]types.User, error) {
	return loadCollection[types.User](ctx, s.kv, usersKey, s.log)
}

func (s *Users) save(ctx context.Context, users []types.User) error {
	return saveCollection(ctx, s.kv, usersKey, users)
}

func userIDs(users []types.User) []types.ID {
	ids := make([]types.ID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

// Compile-time assertion that Users implements domain.UserStore.
var _ domain.UserStore = (*Users)(nil)
