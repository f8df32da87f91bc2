package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
)

// Service implements message and notification operations, including the
// host broadcast and the financial fan-out.
type Service struct {
	users         domain.UserStore
	messages      domain.MessageStore
	notifications domain.NotificationStore
	log           *zap.Logger
}

// New constructs a messaging Service over the given stores.
func New(
	users domain.UserStore,
	messages domain.MessageStore,
	notifications domain.NotificationStore,
	log *zap.Logger,
) *Service {
	return &Service{
		users:         users,
		messages:      messages,
		notifications: notifications,
		log:           log,
	}
}

// Send stores a message, assigning id and timestamp.
func (s *Service) Send(ctx context.Context, message types.Message) (types.Message, error) {
	return s.messages.Add(ctx, message)
}

// Conversation returns the messages between a and b in chat order.
func (s *Service) Conversation(ctx context.Context, a, b types.ID) ([]types.Message, error) {
	return s.messages.Between(ctx, a, b)
}

// MarkConversationRead flags every unread message from senderID to
// receiverID as read.
func (s *Service) MarkConversationRead(ctx context.Context, senderID, receiverID types.ID) error {
	return s.messages.MarkConversationRead(ctx, senderID, receiverID)
}

// MarkDelivered flags a message as delivered unless it was already read.
func (s *Service) MarkDelivered(ctx context.Context, id types.ID) error {
	return s.messages.MarkDelivered(ctx, id)
}

// DeleteConversation removes every message between a and b.
func (s *Service) DeleteConversation(ctx context.Context, a, b types.ID) error {
	return s.messages.DeleteBetween(ctx, a, b)
}

// Broadcast creates one unread message from senderID to every host-role
// user. Each write is independent: a failed add is logged and skipped, and
// earlier adds stay in place. The created messages are returned.
func (s *Service) Broadcast(ctx context.Context, senderID types.ID, content, contentType, mediaURL string) ([]types.Message, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	var created []types.Message
	for _, u := range users {
		if u.Role != types.RoleHost {
			continue
		}
		m, err := s.messages.Add(ctx, types.Message{
			SenderID:    senderID,
			ReceiverID:  u.ID,
			Content:     content,
			ContentType: contentType,
			MediaURL:    mediaURL,
			IsRead:      false,
		})
		if err != nil {
			s.log.Warn("broadcast add failed",
				zap.Int("receiver", int(u.ID)), zap.Error(err))
			continue
		}
		created = append(created, m)
	}
	return created, nil
}

// SendFinancialNotification creates, per target, one financial
// notification and one financial message — two independent writes. With a
// userID it targets exactly that user, silently doing nothing when the
// lookup misses; with nil it targets every host-role user.
func (s *Service) SendFinancialNotification(
	ctx context.Context,
	senderID types.ID,
	userID *types.ID,
	title, content string,
	amount float64,
	mediaURL string,
) ([]types.Notification, []types.Message, error) {
	targets, err := s.resolveTargets(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var (
		notifications []types.Notification
		messages      []types.Message
	)
	for _, u := range targets {
		notifMeta := types.Metadata{"amount": amount}
		if mediaURL != "" {
			notifMeta["mediaUrl"] = mediaURL
		}
		n, err := s.notifications.Add(ctx, types.Notification{
			UserID:   u.ID,
			Title:    title,
			Content:  content,
			Type:     types.NotificationFinancial,
			IsRead:   false,
			Metadata: notifMeta,
		})
		if err != nil {
			s.log.Warn("financial notification add failed",
				zap.Int("user", int(u.ID)), zap.Error(err))
		} else {
			notifications = append(notifications, n)
		}

		m, err := s.messages.Add(ctx, types.Message{
			SenderID:    senderID,
			ReceiverID:  u.ID,
			Content:     content,
			ContentType: types.ContentTypeFinancial,
			MediaURL:    mediaURL,
			IsRead:      false,
			Metadata:    types.Metadata{"title": title, "amount": amount},
		})
		if err != nil {
			s.log.Warn("financial message add failed",
				zap.Int("user", int(u.ID)), zap.Error(err))
			continue
		}
		messages = append(messages, m)
	}
	return notifications, messages, nil
}

// NotificationsFor returns the recipient's feed, newest first.
func (s *Service) NotificationsFor(ctx context.Context, userID types.ID) ([]types.Notification, error) {
	return s.notifications.ForUser(ctx, userID)
}

// SetNotificationRead sets the read flag on a notification.
func (s *Service) SetNotificationRead(ctx context.Context, id types.ID, read bool) error {
	return s.notifications.SetRead(ctx, id, read)
}

func (s *Service) resolveTargets(ctx context.Context, userID *types.ID) ([]types.User, error) {
	if userID != nil {
		u, ok, err := s.users.ByID(ctx, *userID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []types.User{u}, nil
	}

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	var hosts []types.User
	for _, u := range users {
		if u.Role == types.RoleHost {
			hosts = append(hosts, u)
		}
	}
	return hosts, nil
}

// Compile-time assertion that Service implements domain.MessagingService.
var _ domain.MessagingService = (*Service)(nil)
