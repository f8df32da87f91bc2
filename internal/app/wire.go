package app

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/authapi"
	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/kv"
	directorysvc "github.com/algharieb/ghareeb-app/internal/services/directory"
	messagingsvc "github.com/algharieb/ghareeb-app/internal/services/messaging"
	sessionsvc "github.com/algharieb/ghareeb-app/internal/services/session"
	"github.com/algharieb/ghareeb-app/internal/store"
)

// Wire bundles the stores, services and boundary client built from Config.
type Wire struct {
	App *App

	KV            kv.Store
	Users         domain.UserStore
	Messages      domain.MessageStore
	Notifications domain.NotificationStore
	Blocklist     domain.BlocklistStore
	SessionStore  domain.SessionStore
	Auth          domain.AuthClient
	HTTP          *http.Client
	Logger        *zap.Logger
}

// NewWire constructs the dependency graph from cfg. The Redis adapter is
// used when RedisAddr is set, otherwise blobs live in files under Home.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var blobs kv.Store
	if cfg.RedisAddr != "" {
		blobs = kv.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, err
		}
		blobs = kv.NewFile(cfg.Home)
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	// Entity stores over the shared blob store.
	users := store.NewUsers(blobs, logger)
	messages := store.NewMessages(blobs, logger)
	notifications := store.NewNotifications(blobs, logger)
	blocklist := store.NewBlocklist(blobs, logger)
	sessions := store.NewSession(blobs, logger)

	// Boundary client and high-level services.
	auth := authapi.New(cfg.AuthURL, httpClient)
	directory := directorysvc.New(users, messages, notifications, blocklist, logger)
	messaging := messagingsvc.New(users, messages, notifications, logger)
	manager := sessionsvc.NewManager(auth, sessions, logger)

	return &Wire{
		App:           New(directory, messaging, manager),
		KV:            blobs,
		Users:         users,
		Messages:      messages,
		Notifications: notifications,
		Blocklist:     blocklist,
		SessionStore:  sessions,
		Auth:          auth,
		HTTP:          httpClient,
		Logger:        logger,
	}, nil
}
