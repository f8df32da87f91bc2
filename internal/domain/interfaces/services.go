package interfaces

import (
	"context"

	domaintypes "github.com/algharieb/ghareeb-app/internal/domain/types"
)

// DirectoryService exposes user management, cascade deletion, and the
// blocking relation.
type DirectoryService interface {
	Users(ctx context.Context) ([]domaintypes.User, error)
	UserByID(ctx context.Context, id domaintypes.ID) (domaintypes.User, bool, error)
	UserByUsername(ctx context.Context, username string) (domaintypes.User, bool, error)
	AddUser(ctx context.Context, user domaintypes.User) (domaintypes.User, error)
	UpdateUser(ctx context.Context, user domaintypes.User) (domaintypes.User, bool, error)

	// DeleteUser removes the user and cascades into messages (either
	// direction) and notifications addressed to the user.
	DeleteUser(ctx context.Context, id domaintypes.ID) (bool, error)

	Block(ctx context.Context, blocker, blocked domaintypes.ID) error
	Unblock(ctx context.Context, blocker, blocked domaintypes.ID) error
	IsBlocked(ctx context.Context, userID, candidate domaintypes.ID) (bool, error)
	Blocked(ctx context.Context, userID domaintypes.ID) ([]domaintypes.ID, error)
}

// MessagingService exposes message and notification operations, including
// broadcast and financial fan-out.
type MessagingService interface {
	Send(ctx context.Context, message domaintypes.Message) (domaintypes.Message, error)
	Conversation(ctx context.Context, a, b domaintypes.ID) ([]domaintypes.Message, error)
	MarkConversationRead(ctx context.Context, senderID, receiverID domaintypes.ID) error
	MarkDelivered(ctx context.Context, id domaintypes.ID) error
	DeleteConversation(ctx context.Context, a, b domaintypes.ID) error

	Broadcast(ctx context.Context, senderID domaintypes.ID, content, contentType, mediaURL string) ([]domaintypes.Message, error)
	SendFinancialNotification(ctx context.Context, senderID domaintypes.ID, userID *domaintypes.ID, title, content string, amount float64, mediaURL string) ([]domaintypes.Notification, []domaintypes.Message, error)

	NotificationsFor(ctx context.Context, userID domaintypes.ID) ([]domaintypes.Notification, error)
	SetNotificationRead(ctx context.Context, id domaintypes.ID, read bool) error
}

// SessionManager tracks the authenticated identity. Login, Logout and
// Register never surface boundary failures as errors; a failed attempt
// leaves the manager logged out and returns ok=false.
type SessionManager interface {
	Login(ctx context.Context, username, password string) (domaintypes.User, bool)
	Logout(ctx context.Context)
	Register(ctx context.Context, user domaintypes.User) (domaintypes.User, bool)
	Current() (domaintypes.User, bool)
	Authenticated() bool

	// Subscribe registers an observer invoked after every session
	// transition. The returned func cancels the subscription.
	Subscribe(fn func(user domaintypes.User, authenticated bool)) (cancel func())
}
