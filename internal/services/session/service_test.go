package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
	"github.com/algharieb/ghareeb-app/internal/services/session"
	"github.com/algharieb/ghareeb-app/internal/store"
)

// stubAuth answers the boundary calls from canned values.
type stubAuth struct {
	loginUser    types.User
	loginErr     error
	registerErr  error
	logoutErr    error
	logoutCalled bool
	logoutUserID types.ID
}

func (s *stubAuth) Login(_ context.Context, username, _ string) (types.User, error) {
	if s.loginErr != nil {
		return types.User{}, s.loginErr
	}
	u := s.loginUser
	u.Username = username
	return u, nil
}

func (s *stubAuth) Logout(_ context.Context, userID types.ID) error {
	s.logoutCalled = true
	s.logoutUserID = userID
	return s.logoutErr
}

func (s *stubAuth) Register(_ context.Context, user types.User) (types.User, error) {
	if s.registerErr != nil {
		return types.User{}, s.registerErr
	}
	user.ID = 7
	return user, nil
}

func newSessionStore(t *testing.T) *store.Session {
	t.Helper()
	return store.NewSession(kv.NewMemory(), zap.NewNop())
}

func TestLogin_SuccessPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionStore(t)
	auth := &stubAuth{loginUser: types.User{ID: 3}}
	m := session.NewManager(auth, sessions, zap.NewNop())

	var events []bool
	cancel := m.Subscribe(func(_ types.User, authed bool) {
		events = append(events, authed)
	})
	defer cancel()

	user, ok := m.Login(ctx, "amal", "pw")
	require.True(t, ok)
	require.Equal(t, "amal", user.Username)
	require.True(t, m.Authenticated())

	persisted, ok, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, types.ID(3), persisted.ID)

	require.Equal(t, []bool{true}, events)
}

func TestLogin_FailureStaysLoggedOut(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionStore(t)
	auth := &stubAuth{loginErr: errors.New("boom")}
	m := session.NewManager(auth, sessions, zap.NewNop())

	_, ok := m.Login(ctx, "amal", "pw")
	require.False(t, ok)
	require.False(t, m.Authenticated())

	_, persisted, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.False(t, persisted)
}

func TestLogout_BestEffortBoundaryThenClears(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionStore(t)
	auth := &stubAuth{loginUser: types.User{ID: 3}, logoutErr: errors.New("network down")}
	m := session.NewManager(auth, sessions, zap.NewNop())

	_, ok := m.Login(ctx, "amal", "pw")
	require.True(t, ok)

	// The boundary call fails but the session clears anyway.
	m.Logout(ctx)
	require.True(t, auth.logoutCalled)
	require.Equal(t, types.ID(3), auth.logoutUserID)
	require.False(t, m.Authenticated())

	_, persisted, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.False(t, persisted)
}

func TestLogout_WhenLoggedOutSkipsBoundary(t *testing.T) {
	auth := &stubAuth{}
	m := session.NewManager(auth, newSessionStore(t), zap.NewNop())

	m.Logout(context.Background())
	require.False(t, auth.logoutCalled)
}

func TestRegister_BehavesLikeLogin(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionStore(t)
	m := session.NewManager(&stubAuth{}, sessions, zap.NewNop())

	user, ok := m.Register(ctx, types.User{Username: "badr"})
	require.True(t, ok)
	require.Equal(t, types.ID(7), user.ID)
	require.True(t, m.Authenticated())

	persisted, ok, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "badr", persisted.Username)
}

func TestNewManager_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	sessions := newSessionStore(t)
	require.NoError(t, sessions.Set(ctx, types.User{ID: 9, Username: "cached"}))

	// No boundary re-validation happens on restore.
	m := session.NewManager(&stubAuth{loginErr: errors.New("unreachable")}, sessions, zap.NewNop())
	user, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, "cached", user.Username)
}

func TestSubscribe_CancelStopsNotifications(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(&stubAuth{}, newSessionStore(t), zap.NewNop())

	count := 0
	cancel := m.Subscribe(func(types.User, bool) { count++ })

	_, ok := m.Login(ctx, "amal", "pw")
	require.True(t, ok)
	require.Equal(t, 1, count)

	cancel()
	m.Logout(ctx)
	require.Equal(t, 1, count)
}
