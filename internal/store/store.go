package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/codec"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
)

// Persistence keys. The collection key names predate this layer and are
// kept verbatim so existing blobs remain readable.
const (
	usersKey         = "al-ghareeb-users"
	messagesKey      = "al-ghareeb-messages"
	notificationsKey = "al-ghareeb-notifications"
	currentUserKey   = "al-ghareeb-current-user"
)

// blocklistKey derives the per-blocker relation key.
func blocklistKey(blocker types.ID) string {
	return fmt.Sprintf("%s_blocked_users_%d", currentUserKey, blocker)
}

// loadCollection decodes the blob at key into a slice. Absent and corrupt
// blobs both yield nil; only the persistence layer itself can fail.
func loadCollection[T any](ctx context.Context, s kv.Store, key string, log *zap.Logger) ([]T, error) {
	blob, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if !codec.Decode(blob, &items) {
		log.Warn("discarding undecodable collection blob", zap.String("key", key))
		return nil, nil
	}
	return items, nil
}

// saveCollection encodes items and overwrites the blob at key.
func saveCollection[T any](ctx context.Context, s kv.Store, key string, items []T) error {
	blob, err := codec.Encode(items)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, blob)
}

// nextID assigns max(existing)+1, or 1 for an empty collection. Deleted
// ids below the maximum are never reused.
func nextID(ids []types.ID) types.ID {
	next := types.ID(1)
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
