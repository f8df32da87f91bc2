package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
	"github.com/algharieb/ghareeb-app/internal/services/directory"
	"github.com/algharieb/ghareeb-app/internal/store"
)

type fixture struct {
	svc           *directory.Service
	users         *store.Users
	messages      *store.Messages
	notifications *store.Notifications
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	blobs := kv.NewMemory()
	log := zap.NewNop()
	users := store.NewUsers(blobs, log)
	messages := store.NewMessages(blobs, log)
	notifications := store.NewNotifications(blobs, log)
	blocklist := store.NewBlocklist(blobs, log)
	return fixture{
		svc:           directory.New(users, messages, notifications, blocklist, log),
		users:         users,
		messages:      messages,
		notifications: notifications,
	}
}

func TestDeleteUser_Cascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.users.SaveAll(ctx, []types.User{
		{ID: 1, Username: "a"},
		{ID: 2, Username: "b"},
	}))
	require.NoError(t, f.messages.SaveAll(ctx, []types.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2},
		{ID: 2, SenderID: 2, ReceiverID: 1},
		{ID: 3, SenderID: 1, ReceiverID: 1},
	}))
	require.NoError(t, f.notifications.SaveAll(ctx, []types.Notification{
		{ID: 1, UserID: 2, Title: "keep"},
	}))

	found, err := f.svc.DeleteUser(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)

	users, err := f.users.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, types.ID(2), users[0].ID)

	messages, err := f.messages.All(ctx)
	require.NoError(t, err)
	require.Empty(t, messages, "all three messages referenced user 1")

	notifications, err := f.notifications.All(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1, "user 2's notification untouched")
}

func TestDeleteUser_MissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	found, err := f.svc.DeleteUser(ctx, 42)
	require.NoError(t, err)
	require.False(t, found)
}

func TestBlock_WritesBothPaths(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.users.SaveAll(ctx, []types.User{
		{ID: 1, Username: "blocker"},
		{ID: 2, Username: "blocked"},
	}))

	require.NoError(t, f.svc.Block(ctx, 1, 2))
	require.NoError(t, f.svc.Block(ctx, 1, 2)) // idempotent

	ids, err := f.svc.Blocked(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []types.ID{2}, ids)

	u, _, err := f.users.ByID(ctx, 2)
	require.NoError(t, err)
	require.True(t, u.IsBlocked)
	require.Equal(t, types.ID(1), u.BlockedBy)

	ok, err := f.svc.IsBlocked(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, ok)

	// IsBlocked consults the relation, not the record markers.
	ok, err = f.svc.IsBlocked(ctx, 2, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnblock_ClearsRecordMarkersUnconditionally(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.users.SaveAll(ctx, []types.User{
		{ID: 1, Username: "first blocker"},
		{ID: 2, Username: "target"},
		{ID: 3, Username: "second blocker"},
	}))
	require.NoError(t, f.svc.Block(ctx, 1, 2))
	require.NoError(t, f.svc.Block(ctx, 3, 2))

	// User 1 unblocks; the record markers clear even though user 3 still
	// has 2 in their relation set.
	require.NoError(t, f.svc.Unblock(ctx, 1, 2))

	u, _, err := f.users.ByID(ctx, 2)
	require.NoError(t, err)
	require.False(t, u.IsBlocked)
	require.Equal(t, types.ID(0), u.BlockedBy)

	ok, err := f.svc.IsBlocked(ctx, 3, 2)
	require.NoError(t, err)
	require.True(t, ok, "relation set of the other blocker survives")
}
