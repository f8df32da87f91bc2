package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
)

// Manager holds the current authenticated identity.
//
// It is a two-state machine, logged out or logged in as one user. All
// transitions go through Login, Logout and Register; boundary failures
// never escape as errors, they leave the manager logged out and return
// ok=false. On construction the persisted session is trusted without
// re-validating against the boundary.
type Manager struct {
	auth  domain.AuthClient
	store domain.SessionStore
	log   *zap.Logger

	mu      sync.Mutex
	user    types.User
	authed  bool
	subs    map[int]func(types.User, bool)
	nextSub int
}

// NewManager constructs a Manager, restoring any persisted session.
func NewManager(auth domain.AuthClient, store domain.SessionStore, log *zap.Logger) *Manager {
	m := &Manager{
		auth:  auth,
		store: store,
		log:   log,
		subs:  make(map[int]func(types.User, bool)),
	}
	user, ok, err := store.Current(context.Background())
	if err != nil {
		log.Warn("could not restore persisted session", zap.Error(err))
		return m
	}
	if ok {
		m.user = user
		m.authed = true
	}
	return m
}

// Login authenticates against the boundary. On success the user is
// persisted as the current session and observers are notified; on any
// failure the manager stays logged out and ok is false.
func (m *Manager) Login(ctx context.Context, username, password string) (types.User, bool) {
	user, err := m.auth.Login(ctx, username, password)
	if err != nil {
		m.log.Warn("login failed", zap.String("username", username), zap.Error(err))
		return types.User{}, false
	}
	m.establish(ctx, user)
	return user, true
}

// Logout notifies the boundary best-effort, then unconditionally clears
// the persisted session and moves to logged out.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	userID := m.user.ID
	wasAuthed := m.authed
	m.mu.Unlock()

	if wasAuthed {
		if err := m.auth.Logout(ctx, userID); err != nil {
			m.log.Warn("logout notification failed", zap.Error(err))
		}
	}
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn("could not clear persisted session", zap.Error(err))
	}

	m.mu.Lock()
	m.user = types.User{}
	m.authed = false
	subs := m.snapshotSubs()
	m.mu.Unlock()

	notify(subs, types.User{}, false)
}

// Register creates an account at the boundary; success behaves like a
// successful login with the returned user.
func (m *Manager) Register(ctx context.Context, user types.User) (types.User, bool) {
	created, err := m.auth.Register(ctx, user)
	if err != nil {
		m.log.Warn("registration failed", zap.String("username", user.Username), zap.Error(err))
		return types.User{}, false
	}
	m.establish(ctx, created)
	return created, true
}

// Current returns the authenticated user, if any.
func (m *Manager) Current() (types.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.authed
}

// Authenticated reports whether a user is logged in.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authed
}

// Subscribe registers an observer invoked synchronously after every
// transition. The returned func cancels the subscription.
func (m *Manager) Subscribe(fn func(types.User, bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *Manager) establish(ctx context.Context, user types.User) {
	if err := m.store.Set(ctx, user); err != nil {
		m.log.Warn("could not persist session", zap.Error(err))
	}

	m.mu.Lock()
	m.user = user
	m.authed = true
	subs := m.snapshotSubs()
	m.mu.Unlock()

	notify(subs, user, true)
}

// snapshotSubs is called with the mutex held; callbacks run after release
// so an observer may call back into the manager.
func (m *Manager) snapshotSubs() []func(types.User, bool) {
	subs := make([]func(types.User, bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(types.User, bool), user types.User, authed bool) {
	for _, fn := range subs {
		fn(user, authed)
	}
}

// Compile-time assertion that Manager implements domain.SessionManager.
var _ domain.SessionManager = (*Manager)(nil)
