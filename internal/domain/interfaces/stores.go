package interfaces

import (
	"context"

	domaintypes "github.com/algharieb/ghareeb-app/internal/domain/types"
)

// UserStore persists the user collection as one encrypted blob.
//
// Mutations that target an id return found=false when no record matches;
// the collection is left untouched in that case.
type UserStore interface {
	All(ctx context.Context) ([]domaintypes.User, error)
	ByID(ctx context.Context, id domaintypes.ID) (domaintypes.User, bool, error)
	ByUsername(ctx context.Context, username string) (domaintypes.User, bool, error)
	SaveAll(ctx context.Context, users []domaintypes.User) error
	Add(ctx context.Context, user domaintypes.User) (domaintypes.User, error)
	Update(ctx context.Context, user domaintypes.User) (domaintypes.User, bool, error)
	Delete(ctx context.Context, id domaintypes.ID) (bool, error)

	// Targeted partial updates used by the blocking flow.
	SetBlockFlag(ctx context.Context, id, blocker domaintypes.ID) error
	ClearBlockFlag(ctx context.Context, id domaintypes.ID) error
}

// MessageStore persists the message collection.
type MessageStore interface {
	All(ctx context.Context) ([]domaintypes.Message, error)
	SaveAll(ctx context.Context, messages []domaintypes.Message) error
	Add(ctx context.Context, message domaintypes.Message) (domaintypes.Message, error)
	Update(ctx context.Context, message domaintypes.Message) (domaintypes.Message, bool, error)
	Delete(ctx context.Context, id domaintypes.ID) (bool, error)

	// Between returns the conversation between two users, ascending by
	// timestamp (chat view order).
	Between(ctx context.Context, a, b domaintypes.ID) ([]domaintypes.Message, error)
	MarkConversationRead(ctx context.Context, senderID, receiverID domaintypes.ID) error
	MarkDelivered(ctx context.Context, id domaintypes.ID) error
	DeleteBetween(ctx context.Context, a, b domaintypes.ID) error
	DeleteForUser(ctx context.Context, id domaintypes.ID) error
}

// NotificationStore persists the notification collection.
type NotificationStore interface {
	All(ctx context.Context) ([]domaintypes.Notification, error)
	SaveAll(ctx context.Context, notifications []domaintypes.Notification) error
	Add(ctx context.Context, notification domaintypes.Notification) (domaintypes.Notification, error)
	Delete(ctx context.Context, id domaintypes.ID) (bool, error)

	// ForUser returns the recipient's notifications, descending by
	// timestamp (feed order, newest first).
	ForUser(ctx context.Context, userID domaintypes.ID) ([]domaintypes.Notification, error)
	SetRead(ctx context.Context, id domaintypes.ID, read bool) error
	DeleteForUser(ctx context.Context, userID domaintypes.ID) error
}

// BlocklistStore keeps one ordered id set per blocking user.
type BlocklistStore interface {
	List(ctx context.Context, blocker domaintypes.ID) ([]domaintypes.ID, error)
	Add(ctx context.Context, blocker, blocked domaintypes.ID) error
	Remove(ctx context.Context, blocker, blocked domaintypes.ID) error
	Contains(ctx context.Context, blocker, candidate domaintypes.ID) (bool, error)
}

// SessionStore persists the current authenticated user.
type SessionStore interface {
	Current(ctx context.Context) (domaintypes.User, bool, error)
	Set(ctx context.Context, user domaintypes.User) error
	Clear(ctx context.Context) error
}
