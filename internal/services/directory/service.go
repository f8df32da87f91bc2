package directory

import (
	"context"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
)

// Service manages the user directory: CRUD, cascade deletion, and the
// blocking relation.
type Service struct {
	users         domain.UserStore
	messages      domain.MessageStore
	notifications domain.NotificationStore
	blocklist     domain.BlocklistStore
	log           *zap.Logger
}

// New constructs a directory Service over the given stores.
func New(
	users domain.UserStore,
	messages domain.MessageStore,
	notifications domain.NotificationStore,
	blocklist domain.BlocklistStore,
	log *zap.Logger,
) *Service {
	return &Service{
		users:         users,
		messages:      messages,
		notifications: notifications,
		blocklist:     blocklist,
		log:           log,
	}
}

// Users returns every user.
func (s *Service) Users(ctx context.Context) ([]types.User, error) {
	return s.users.All(ctx)
}

// UserByID looks a user up by id.
func (s *Service) UserByID(ctx context.Context, id types.ID) (types.User, bool, error) {
	return s.users.ByID(ctx, id)
}

// UserByUsername looks a user up by username. Callers enforcing username
// uniqueness check here before AddUser; the store itself does not reject
// duplicates.
func (s *Service) UserByUsername(ctx context.Context, username string) (types.User, bool, error) {
	return s.users.ByUsername(ctx, username)
}

// AddUser creates the user, assigning id and creation timestamps.
func (s *Service) AddUser(ctx context.Context, user types.User) (types.User, error) {
	return s.users.Add(ctx, user)
}

// UpdateUser replaces the stored record by id.
func (s *Service) UpdateUser(ctx context.Context, user types.User) (types.User, bool, error) {
	return s.users.Update(ctx, user)
}

// DeleteUser removes the user, then every message the user sent or
// received, then every notification addressed to the user. The three
// writes are independent; a failure partway leaves the earlier deletions
// in place.
func (s *Service) DeleteUser(ctx context.Context, id types.ID) (bool, error) {
	found, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := s.messages.DeleteForUser(ctx, id); err != nil {
		return true, err
	}
	if err := s.notifications.DeleteForUser(ctx, id); err != nil {
		return true, err
	}
	s.log.Info("deleted user with cascade", zap.Int("id", int(id)))
	return true, nil
}

// Block adds blocked to blocker's relation set and stamps the global
// IsBlocked/BlockedBy markers on the blocked user's record. Both data
// paths are written; the relation is per-blocker, the record markers are
// not.
func (s *Service) Block(ctx context.Context, blocker, blocked types.ID) error {
	if err := s.blocklist.Add(ctx, blocker, blocked); err != nil {
		return err
	}
	return s.users.SetBlockFlag(ctx, blocked, blocker)
}

// Unblock removes blocked from blocker's relation set and clears the
// global markers off the user record unconditionally — even when the
// record says a different user set them. Longstanding behavior; callers
// relying on the markers should prefer IsBlocked.
func (s *Service) Unblock(ctx context.Context, blocker, blocked types.ID) error {
	if err := s.blocklist.Remove(ctx, blocker, blocked); err != nil {
		return err
	}
	return s.users.ClearBlockFlag(ctx, blocked)
}

// IsBlocked reports whether candidate is in userID's relation set. The
// global record markers are not consulted.
func (s *Service) IsBlocked(ctx context.Context, userID, candidate types.ID) (bool, error) {
	return s.blocklist.Contains(ctx, userID, candidate)
}

// Blocked returns the ids blocked by userID.
func (s *Service) Blocked(ctx context.Context, userID types.ID) ([]types.ID, error) {
	return s.blocklist.List(ctx, userID)
}

// Compile-time assertion that Service implements domain.DirectoryService.
var _ domain.DirectoryService = (*Service)(nil)
