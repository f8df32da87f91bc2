package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
)

// Blocklist keeps one ordered id set per blocking user, each under its own
// derived key. The relation is directional: A blocking B says nothing
// about B blocking A.
type Blocklist struct {
	kv  kv.Store
	log *zap.Logger
	mu  sync.Mutex
}

// NewBlocklist returns a Blocklist store over s.
func NewBlocklist(s kv.Store, log *zap.Logger) *Blocklist {
	return &Blocklist{kv: s, log: log}
}

// List returns the ids blocked by blocker, in the order they were blocked.
func (s *Blocklist) List(ctx context.Context, blocker types.ID) ([]types.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, blocker)
}

// Add appends blocked to blocker's set. Idempotent: an id already present
// is not appended again.
func (s *Blocklist) Add(ctx context.Context, blocker, blocked types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, blocker)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == blocked {
			return nil
		}
	}
	return s.save(ctx, blocker, append(ids, blocked))
}

// Remove drops blocked from blocker's set.
func (s *Blocklist) Remove(ctx context.Context, blocker, blocked types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, blocker)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != blocked {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return s.save(ctx, blocker, kept)
}

// Contains reports whether candidate is in blocker's set. It consults the
// relation only, not the global flag on the user record.
func (s *Blocklist) Contains(ctx context.Context, blocker, candidate types.ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load(ctx, blocker)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == candidate {
			return true, nil
		}
	}
	return false, nil
}

func (s *Blocklist) load(ctx context.Context, blocker types.ID) ([]types.ID, error) {
	return loadCollection[types.ID](ctx, s.kv, blocklistKey(blocker), s.log)
}

func (s *Blocklist) save(ctx context.Context, blocker types.ID, ids []types.ID) error {
	return saveCollection(ctx, s.kv, blocklistKey(blocker), ids)
}

// Compile-time assertion that Blocklist implements domain.BlocklistStore.
var _ domain.BlocklistStore = (*Blocklist)(nil)
