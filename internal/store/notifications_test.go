package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
	"github.com/algharieb/ghareeb-app/internal/store"
)

func newNotifications(t *testing.T) *store.Notifications {
	t.Helper()
	return store.NewNotifications(kv.NewMemory(), zap.NewNop())
}

func TestNotifications_AddAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	notifications := newNotifications(t)

	n, err := notifications.Add(ctx, types.Notification{UserID: 1, Title: "t"})
	require.NoError(t, err)
	require.Equal(t, types.ID(1), n.ID)
	require.False(t, n.Timestamp.IsZero())
}

func TestNotifications_ForUserDescendingByTimestamp(t *testing.T) {
	ctx := context.Background()
	notifications := newNotifications(t)

	require.NoError(t, notifications.SaveAll(ctx, []types.Notification{
		{ID: 1, UserID: 1, Title: "oldest", Timestamp: at(8)},
		{ID: 2, UserID: 2, Title: "other user", Timestamp: at(9)},
		{ID: 3, UserID: 1, Title: "newest", Timestamp: at(17)},
		{ID: 4, UserID: 1, Title: "middle", Timestamp: at(12)},
	}))

	got, err := notifications.ForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "newest", got[0].Title)
	require.Equal(t, "middle", got[1].Title)
	require.Equal(t, "oldest", got[2].Title)
}

func TestNotifications_SetRead(t *testing.T) {
	ctx := context.Background()
	notifications := newNotifications(t)

	n, err := notifications.Add(ctx, types.Notification{UserID: 1, Title: "t"})
	require.NoError(t, err)

	require.NoError(t, notifications.SetRead(ctx, n.ID, true))
	got, err := notifications.ForUser(ctx, 1)
	require.NoError(t, err)
	require.True(t, got[0].IsRead)

	require.NoError(t, notifications.SetRead(ctx, n.ID, false))
	got, err = notifications.ForUser(ctx, 1)
	require.NoError(t, err)
	require.False(t, got[0].IsRead)

	// Unknown id is a silent no-op.
	require.NoError(t, notifications.SetRead(ctx, 99, true))
}
