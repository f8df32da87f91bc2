package types

import "time"

// Message is a direct message between two users. Timestamp is stamped at
// creation and immutable afterwards.
type Message struct {
	ID          ID        `json:"id"`
	SenderID    ID        `json:"senderId"`
	ReceiverID  ID        `json:"receiverId"`
	Content     string    `json:"content"`
	ContentType string    `json:"contentType"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
	IsRead      bool      `json:"isRead"`
	IsDelivered bool      `json:"isDelivered"`
	Timestamp   time.Time `json:"timestamp"`
}
