package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
)

// Notifications persists the notification collection.
type Notifications struct {
	kv  kv.Store
	log *zap.Logger
	mu  sync.Mutex
}

// NewNotifications returns a Notifications store over s.
func NewNotifications(s kv.Store, log *zap.Logger) *Notifications {
	return &Notifications{kv: s, log: log}
}

// All returns every stored notification.
func (s *Notifications) All(ctx context.Context) ([]types.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// SaveAll overwrites the whole collection.
func (s *Notifications) SaveAll(ctx context.Context, notifications []types.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, notifications)
}

// Add assigns the next id, stamps the creation timestamp, appends and
// persists.
func (s *Notifications) Add(ctx context.Context, notification types.Notification) (types.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load(ctx)
	if err != nil {
		return types.Notification{}, err
	}
	notification.ID = nextID(notificationIDs(notifications))
	notification.Timestamp = time.Now().UTC()

	notifications = append(notifications, notification)
	if err := s.save(ctx, notifications); err != nil {
		return types.Notification{}, err
	}
	return notification, nil
}

// Delete removes the record with the given id.
func (s *Notifications) Delete(ctx context.Context, id types.ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	kept := notifications[:0]
	for _, n := range notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notifications) {
		return false, nil
	}
	return true, s.save(ctx, kept)
}

// ForUser returns the recipient's notifications, descending by timestamp.
// The feed shows newest first, the opposite of conversation order.
func (s *Notifications) ForUser(ctx context.Context, userID types.ID) ([]types.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.Notification
	for _, n := range notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// SetRead sets the read flag on the notification with the given id.
func (s *Notifications) SetRead(ctx context.Context, id types.ID, read bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].IsRead = read
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, notifications)
}

// DeleteForUser removes every notification addressed to the user. Used by
// the cascade on user deletion.
func (s *Notifications) DeleteForUser(ctx context.Context, userID types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := notifications[:0]
	for _, n := range notifications {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notifications) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *Notifications) load(ctx context.Context) ([]types.Notification, error) {
	return loadCollection[types.Notification](ctx, s.kv, notificationsKey, s.log)
}

func (s *Notifications) save(ctx context.Context, notifications []types.Notification) error {
	return saveCollection(ctx, s.kv, notificationsKey, notifications)
}

func notificationIDs(notifications []types.Notification) []types.ID {
	ids := make([]types.ID, len(notifications))
	for i, n := range notifications {
		ids[i] = n.ID
	}
	return ids
}

// Compile-time assertion that Notifications implements domain.NotificationStore.
var _ domain.NotificationStore = (*Notifications)(nil)
