package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
	"github.com/algharieb/ghareeb-app/internal/kv"
)

// Messages persists the message collection.
type Messages struct {
	kv  kv.Store
	log *zap.Logger
	mu  sync.Mutex
}

// NewMessages returns a Messages store over s.
func NewMessages(s kv.Store, log *zap.Logger) *Messages {
	return &Messages{kv: s, log: log}
}

// All returns every stored message.
func (s *Messages) All(ctx context.Context) ([]types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// SaveAll overwrites the whole collection.
func (s *Messages) SaveAll(ctx context.Context, messages []types.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, messages)
}

// Add assigns the next id, stamps the creation timestamp, appends and
// persists. The timestamp is immutable afterwards.
func (s *Messages) Add(ctx context.Context, message types.Message) (types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return types.Message{}, err
	}
	message.ID = nextID(messageIDs(messages))
	message.Timestamp = time.Now().UTC()

	messages = append(messages, message)
	if err := s.save(ctx, messages); err != nil {
		return types.Message{}, err
	}
	return message, nil
}

// Update replaces the record with message's id in place, preserving order.
func (s *Messages) Update(ctx context.Context, message types.Message) (types.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return message, false, err
	}
	for i := range messages {
		if messages[i].ID == message.ID {
			messages[i] = message
			return message, true, s.save(ctx, messages)
		}
	}
	return message, false, nil
}

// Delete removes the record with the given id.
func (s *Messages) Delete(ctx context.Context, id types.ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	kept := messages[:0]
	for _, m := range messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(messages) {
		return false, nil
	}
	return true, s.save(ctx, kept)
}

// Between returns the conversation between a and b, either direction,
// ascending by timestamp.
func (s *Messages) Between(ctx context.Context, a, b types.ID) ([]types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.Message
	for _, m := range messages {
		if betweenUsers(m, a, b) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// MarkConversationRead flags every unread message from senderID to
// receiverID as read.
func (s *Messages) MarkConversationRead(ctx context.Context, senderID, receiverID types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range messages {
		m := &messages[i]
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.IsRead {
			m.IsRead = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, messages)
}

// MarkDelivered flags the message as delivered. A message that is already
// delivered, or already read, is left untouched: reading implies delivery
// and the flag never moves backwards through that state.
func (s *Messages) MarkDelivered(ctx context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range messages {
		m := &messages[i]
		if m.ID == id && !m.IsDelivered && !m.IsRead {
			m.IsDelivered = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, messages)
}

// DeleteBetween removes the whole conversation between a and b.
func (s *Messages) DeleteBetween(ctx context.Context, a, b types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := messages[:0]
	for _, m := range messages {
		if !betweenUsers(m, a, b) {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(messages) {
		return nil
	}
	return s.save(ctx, kept)
}

// DeleteForUser removes every message where the user is sender or
// receiver. Used by the cascade on user deletion.
func (s *Messages) DeleteForUser(ctx context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := messages[:0]
	for _, m := range messages {
		if m.SenderID != id && m.ReceiverID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(messages) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *Messages) load(ctx context.Context) ([]types.Message, error) {
	return loadCollection[types.Message](ctx, s.kv, messagesKey, s.log)
}

func (s *Messages) save(ctx context.Context, messages []types.Message) error {
	return saveCollection(ctx, s.kv, messagesKey, messages)
}

func betweenUsers(m types.Message, a, b types.ID) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}

func messageIDs(messages []types.Message) []types.ID {
	ids := make([]types.ID, len(messages))
	for i, m := range messages {
		ids[i] = m.ID
	}
	return ids
}

// Compile-time assertion that Messages implements domain.MessageStore.
var _ domain.MessageStore = (*Messages)(nil)
